package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Akr1040317/CollegeApp-sub000/internal/advisor"
	"github.com/Akr1040317/CollegeApp-sub000/internal/auth"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
	"github.com/Akr1040317/CollegeApp-sub000/internal/wizard"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleSaveProfile is a direct draft save without a step transition
// (autosave, edits after completion).
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.decodeDraft(w, r)
	if !ok {
		return
	}
	if err := s.Store.SaveProfile(r.Context(), draft); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (s *Server) handleWizardState(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if errors.Is(err, store.ErrNotFound) {
		// nothing saved yet: the wizard starts at step one
		writeJSON(w, http.StatusOK, map[string]any{
			"step": int(wizard.StepPersonalInfo), "name": wizard.StepPersonalInfo.String(), "complete": false,
		})
		return
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}
	step := s.Flow.Current(p)
	writeJSON(w, http.StatusOK, map[string]any{
		"step": int(step), "name": step.String(), "complete": p.Status == models.ProfileComplete,
	})
}

func (s *Server) handleWizardAdvance(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.decodeDraft(w, r)
	if !ok {
		return
	}

	next, err := s.Flow.Advance(r.Context(), draft)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"step": int(next), "name": next.String(), "profile": draft,
	})
}

// decodeDraft reads the submitted profile draft and pins it to the
// session user's stored profile (id, step, status). Clients cannot move
// the wizard by posting a different step.
func (s *Server) decodeDraft(w http.ResponseWriter, r *http.Request) (*models.StudentProfile, bool) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	var draft models.StudentProfile
	if err := decodeBody(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return nil, false
	}
	draft.UserID = session.UserID

	existing, err := s.Store.ProfileByUser(r.Context(), session.UserID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		draft.ID = uuid.UUID{}
		draft.WizardStep = 1
		draft.Status = models.ProfileInProgress
	case err != nil:
		writeStoreError(w, err)
		return nil, false
	default:
		draft.ID = existing.ID
		draft.WizardStep = existing.WizardStep
		draft.Status = existing.Status
		draft.CollegeRecommendations = existing.CollegeRecommendations
	}
	return &draft, true
}

func (s *Server) handleGenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	recs, err := s.Advisor.GenerateRecommendations(r.Context(), p)
	if err != nil {
		// surfaced so the client can offer a retry; no fabricated data
		log.Printf("recommendation generation failed: %v", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
}

func (s *Server) handleListRecommendations(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var recs []advisor.CollegeRecommendation
	if len(p.CollegeRecommendations) > 0 {
		if err := json.Unmarshal(p.CollegeRecommendations, &recs); err != nil {
			log.Printf("cached recommendations are corrupt for student=%s: %v", p.ID, err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
}
