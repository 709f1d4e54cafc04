package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
)

// collectionModel allocates a fresh record for a child collection.
func collectionModel(col string) any {
	switch col {
	case store.Trackers:
		return &models.ApplicationTracker{}
	case store.Essays:
		return &models.Essay{}
	case store.Tasks:
		return &models.Task{}
	case store.Scholarships:
		return &models.Scholarship{}
	case store.SelectedColleges:
		return &models.SelectedCollege{}
	}
	return nil
}

type owned interface {
	OwnerID() uuid.UUID
}

// ownedBy reports whether the record belongs to the given student.
// Missing records surface as store.ErrNotFound.
func (s *Server) ownedBy(r *http.Request, col string, id, studentID uuid.UUID) (bool, error) {
	rec := collectionModel(col)
	if rec == nil {
		return false, store.ErrUnknownCollection
	}
	if err := s.Store.Get(r.Context(), col, id, rec); err != nil {
		return false, err
	}
	o, ok := rec.(owned)
	if !ok {
		return false, nil
	}
	return o.OwnerID() == studentID, nil
}
