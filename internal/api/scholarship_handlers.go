package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/search"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
)

var scholarshipFields = map[string]bool{
	"name": true, "provider": true, "amount": true, "deadline": true,
	"eligibility": true, "match_score": true, "status": true,
}

func (s *Server) handleListScholarships(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	var scholarships []models.Scholarship
	if err := s.Store.Filter(r.Context(), store.Scholarships,
		map[string]any{"student_id": p.ID}, "deadline", "asc", &scholarships); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scholarships)
}

func (s *Server) handleCreateScholarship(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	var sch models.Scholarship
	if err := decodeBody(r, &sch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if sch.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if sch.Status == "" {
		sch.Status = models.ScholarshipInterested
	}
	if _, ok := models.ValidScholarshipStatus[sch.Status]; !ok {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}
	sch.ID = uuid.UUID{}
	sch.StudentID = p.ID

	if err := s.Store.Create(r.Context(), store.Scholarships, &sch); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sch)
}

func (s *Server) handleUpdateScholarship(w http.ResponseWriter, r *http.Request) {
	s.updateOwned(w, r, store.Scholarships, scholarshipFields, func(raw map[string]any) string {
		if v, ok := raw["status"].(string); ok {
			if _, valid := models.ValidScholarshipStatus[models.ScholarshipStatus(v)]; !valid {
				return "invalid status"
			}
		}
		return ""
	})
}

func (s *Server) handleDeleteScholarship(w http.ResponseWriter, r *http.Request) {
	s.deleteOwned(w, r, store.Scholarships)
}

func (s *Server) handleDiscoverScholarships(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	found, err := s.Advisor.DiscoverScholarships(r.Context(), p)
	if err != nil {
		log.Printf("scholarship discovery failed for student=%s: %v", p.ID, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scholarships": found})
}

// handleSearchScholarships serves ?q= full-text search from the search
// index; the index trails writes by up to one sync tick.
func (s *Server) handleSearchScholarships(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
	}

	docs, err := search.SearchScholarships(r.Context(), s.ES, p.ID, r.URL.Query().Get("q"), limit)
	if err != nil {
		log.Printf("scholarship search failed: %v", err)
		writeError(w, http.StatusBadGateway, "search unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": docs})
}
