package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
)

// filterFields keeps only the allowed keys of a raw update payload.
// student_id, ids, and timestamps can never be set by the client.
func filterFields(raw map[string]any, allowed map[string]bool) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if allowed[k] {
			out[k] = v
		}
	}
	return out
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}

var trackerFields = map[string]bool{
	"college_name": true, "deadline": true, "decision_type": true, "status": true,
	"requirements": true, "fee_amount": true, "fee_paid": true, "notes": true,
}

func (s *Server) handleListTrackers(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	var trackers []models.ApplicationTracker
	if err := s.Store.Filter(r.Context(), store.Trackers,
		map[string]any{"student_id": p.ID}, "deadline", "asc", &trackers); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trackers)
}

func (s *Server) handleCreateTracker(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	var tracker models.ApplicationTracker
	if err := decodeBody(r, &tracker); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if tracker.CollegeName == "" {
		writeError(w, http.StatusBadRequest, "college_name is required")
		return
	}
	if tracker.Status == "" {
		tracker.Status = models.TrackerNotStarted
	}
	if _, ok := models.ValidTrackerStatus[tracker.Status]; !ok {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}
	tracker.ID = uuid.UUID{}
	tracker.StudentID = p.ID

	if err := s.Store.Create(r.Context(), store.Trackers, &tracker); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tracker)
}

func (s *Server) handleUpdateTracker(w http.ResponseWriter, r *http.Request) {
	s.updateOwned(w, r, store.Trackers, trackerFields, func(raw map[string]any) string {
		if v, ok := raw["status"].(string); ok {
			if _, valid := models.ValidTrackerStatus[models.TrackerStatus(v)]; !valid {
				return "invalid status"
			}
		}
		return ""
	})
}

func (s *Server) handleDeleteTracker(w http.ResponseWriter, r *http.Request) {
	s.deleteOwned(w, r, store.Trackers)
}

// updateOwned loads the record, checks ownership through the collection
// filter, applies the whitelisted fields, and returns the fresh record.
func (s *Server) updateOwned(w http.ResponseWriter, r *http.Request, col string, allowed map[string]bool, validate func(map[string]any) string) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	owned, err := s.ownedBy(r, col, id, p.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !owned {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var raw map[string]any
	if err := decodeBody(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	fields := filterFields(raw, allowed)
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no updatable fields in payload")
		return
	}
	if validate != nil {
		if msg := validate(raw); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
	}

	if err := s.Store.Update(r.Context(), col, id, fields); err != nil {
		writeStoreError(w, err)
		return
	}
	out := collectionModel(col)
	if err := s.Store.Get(r.Context(), col, id, out); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) deleteOwned(w http.ResponseWriter, r *http.Request, col string) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	owned, err := s.ownedBy(r, col, id, p.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !owned {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err := s.Store.Delete(r.Context(), col, id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
