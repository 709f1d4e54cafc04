package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
)

var essayFields = map[string]bool{
	"title": true, "prompt": true, "content": true, "status": true, "reviewers": true,
}

func countWords(s string) int { return len(strings.Fields(s)) }

func (s *Server) handleListEssays(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	var essays []models.Essay
	if err := s.Store.Filter(r.Context(), store.Essays,
		map[string]any{"student_id": p.ID}, "updated_at", "desc", &essays); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, essays)
}

func (s *Server) handleGetEssay(w http.ResponseWriter, r *http.Request) {
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
	var essay models.Essay
	if err := s.Store.Get(r.Context(), store.Essays, id, &essay); err != nil {
		writeStoreError(w, err)
		return
	}
	if essay.StudentID != p.ID {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, essay)
}

func (s *Server) handleCreateEssay(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	var essay models.Essay
	if err := decodeBody(r, &essay); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if essay.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if essay.Status == "" {
		essay.Status = models.EssayDraft
	}
	if _, ok := models.ValidEssayStatus[essay.Status]; !ok {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}
	essay.ID = uuid.UUID{}
	essay.StudentID = p.ID
	essay.WordCount = countWords(essay.Content)
	essay.CharCount = len([]rune(essay.Content))

	if err := s.Store.Create(r.Context(), store.Essays, &essay); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, essay)
}

// Counts are derived server-side on every content change so they never
// drift from the stored text.
func (s *Server) handleUpdateEssay(w http.ResponseWriter, r *http.Request) {
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
	owned, err := s.ownedBy(r, store.Essays, id, p.ID)
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
	if v, ok := raw["status"].(string); ok {
		if _, valid := models.ValidEssayStatus[models.EssayStatus(v)]; !valid {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
	}
	fields := filterFields(raw, essayFields)
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no updatable fields in payload")
		return
	}
	if content, ok := fields["content"].(string); ok {
		fields["word_count"] = countWords(content)
		fields["char_count"] = len([]rune(content))
	}

	if err := s.Store.Update(r.Context(), store.Essays, id, fields); err != nil {
		writeStoreError(w, err)
		return
	}
	var essay models.Essay
	if err := s.Store.Get(r.Context(), store.Essays, id, &essay); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, essay)
}

func (s *Server) handleDeleteEssay(w http.ResponseWriter, r *http.Request) {
	s.deleteOwned(w, r, store.Essays)
}

func (s *Server) handleAnalyzeEssay(w http.ResponseWriter, r *http.Request) {
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
	var essay models.Essay
	if err := s.Store.Get(r.Context(), store.Essays, id, &essay); err != nil {
		writeStoreError(w, err)
		return
	}
	if essay.StudentID != p.ID {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if strings.TrimSpace(essay.Content) == "" {
		writeError(w, http.StatusBadRequest, "essay has no content to analyze")
		return
	}

	fb, err := s.Advisor.AnalyzeEssay(r.Context(), &essay)
	if err != nil {
		log.Printf("essay analysis failed for essay=%s: %v", essay.ID, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"feedback": fb, "essay": essay})
}
