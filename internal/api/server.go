// Package api is the HTTP surface: gorilla/mux routes and JSON handlers
// for every page-level operation, scoped to the authenticated student.
package api

import (
	"net/http"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/Akr1040317/CollegeApp-sub000/internal/advisor"
	"github.com/Akr1040317/CollegeApp-sub000/internal/auth"
	"github.com/Akr1040317/CollegeApp-sub000/internal/files"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
	"github.com/Akr1040317/CollegeApp-sub000/internal/wizard"
)

type Server struct {
	Store     *store.Store
	Auth      *auth.Service
	Flow      *wizard.Flow
	Advisor   *advisor.Advisor
	ES        *es.Client
	Files     *files.Storage
	JWTSecret string
}

// profileFor resolves the session's student profile. Every child record
// is keyed by this profile's id.
func (s *Server) profileFor(r *http.Request) (*models.StudentProfile, *auth.Session, error) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		return nil, nil, errNoSession
	}
	p, err := s.Store.ProfileByUser(r.Context(), session.UserID)
	if err != nil {
		return nil, session, err
	}
	return p, session, nil
}
