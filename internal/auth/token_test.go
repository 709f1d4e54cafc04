package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "ada@example.com", DisplayName: "Ada"}

	token, err := IssueToken("secret", user, time.Hour)
	require.NoError(t, err)

	session, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, "ada@example.com", session.Email)
	assert.Equal(t, "Ada", session.DisplayName)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "ada@example.com"}
	token, err := IssueToken("secret", user, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "ada@example.com"}
	token, err := IssueToken("secret", user, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-token")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "ada@example.com"}
	token, err := IssueToken("secret", user, time.Hour)
	require.NoError(t, err)

	var gotSession *Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession, _ = SessionFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware("secret")(inner)

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotSession)
		assert.Equal(t, user.ID, gotSession.UserID)
	})

	t.Run("missing header", func(t *testing.T) {
		gotSession = nil
		req := httptest.NewRequest("GET", "/api/tasks", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, gotSession)
	})

	t.Run("bad token", func(t *testing.T) {
		gotSession = nil
		req := httptest.NewRequest("GET", "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSessionFromEmptyContext(t *testing.T) {
	_, ok := SessionFrom(context.Background())
	assert.False(t, ok)
}
