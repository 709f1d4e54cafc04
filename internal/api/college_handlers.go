package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
)

var collegeFields = map[string]bool{
	"college_name": true, "category": true, "notes": true, "rating": true,
	"application_status": true,
}

func (s *Server) handleListColleges(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	var colleges []models.SelectedCollege
	if err := s.Store.Filter(r.Context(), store.SelectedColleges,
		map[string]any{"student_id": p.ID}, "created_at", "asc", &colleges); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, colleges)
}

func (s *Server) handleCreateCollege(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	var college models.SelectedCollege
	if err := decodeBody(r, &college); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if college.CollegeName == "" {
		writeError(w, http.StatusBadRequest, "college_name is required")
		return
	}
	if college.Category == "" {
		college.Category = models.CategoryTarget
	}
	if _, ok := models.ValidCollegeCategory[college.Category]; !ok {
		writeError(w, http.StatusBadRequest, "invalid category")
		return
	}
	if college.Rating != nil && (*college.Rating < 1 || *college.Rating > 5) {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}
	college.ID = uuid.UUID{}
	college.StudentID = p.ID

	if err := s.Store.Create(r.Context(), store.SelectedColleges, &college); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, college)
}

func (s *Server) handleUpdateCollege(w http.ResponseWriter, r *http.Request) {
	s.updateOwned(w, r, store.SelectedColleges, collegeFields, func(raw map[string]any) string {
		if v, ok := raw["category"].(string); ok {
			if _, valid := models.ValidCollegeCategory[models.CollegeCategory(v)]; !valid {
				return "invalid category"
			}
		}
		if v, ok := raw["rating"].(float64); ok && (v < 1 || v > 5) {
			return "rating must be between 1 and 5"
		}
		return ""
	})
}

func (s *Server) handleDeleteCollege(w http.ResponseWriter, r *http.Request) {
	s.deleteOwned(w, r, store.SelectedColleges)
}
