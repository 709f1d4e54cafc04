package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Akr1040317/CollegeApp-sub000/internal/auth"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

type accountView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

func toAccountView(u *models.User) accountView {
	return accountView{ID: u.ID.String(), Email: u.Email, DisplayName: u.DisplayName}
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	if body.Email == "" || len(body.Password) < 8 {
		writeError(w, http.StatusBadRequest, "email and a password of at least 8 characters are required")
		return
	}

	user, token, err := s.Auth.SignUp(r.Context(), body.Email, body.Password, body.DisplayName)
	if errors.Is(err, auth.ErrEmailTaken) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		log.Printf("signup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "signup failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"token": token, "user": toAccountView(user)})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	user, token, err := s.Auth.SignIn(r.Context(), strings.TrimSpace(strings.ToLower(body.Email)), body.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		log.Printf("signin failed: %v", err)
		writeError(w, http.StatusInternalServerError, "signin failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": toAccountView(user)})
}

// Tokens are stateless; signout is the client dropping its copy.
func (s *Server) handleSignOut(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// handleResetPassword serves both halves of the flow: {email} requests a
// token, {token,new_password} consumes one.
func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if body.Token != "" {
		if len(body.NewPassword) < 8 {
			writeError(w, http.StatusBadRequest, "new password must be at least 8 characters")
			return
		}
		err := s.Auth.ResetPassword(r.Context(), body.Token, body.NewPassword)
		if errors.Is(err, auth.ErrResetTokenInvalid) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			log.Printf("password reset failed: %v", err)
			writeError(w, http.StatusInternalServerError, "reset failed")
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := s.Auth.RequestPasswordReset(r.Context(), strings.TrimSpace(strings.ToLower(body.Email))); err != nil {
		log.Printf("reset request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "reset request failed")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		DisplayName string `json:"display_name"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	user, err := s.Auth.UpdateProfile(r.Context(), session.UserID, body.DisplayName)
	if err != nil {
		log.Printf("account update failed: %v", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	writeJSON(w, http.StatusOK, toAccountView(user))
}
