package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventfindr/notifier/internal/adapters/identity"
)

func TestAuthCallback_ProviderErrorRedirectsToLogin(t *testing.T) {
	h, s := newTestHandler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?error=access_denied", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://app.example.com/login?error=access_denied", w.Header().Get("Location"))
	assert.Zero(t, s.exchanger.calls)
}

func TestAuthCallback_ProviderErrorDescriptionPreferred(t *testing.T) {
	h, _ := newTestHandler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?error=access_denied&error_description=User+denied+access", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://app.example.com/login?error=User+denied+access", w.Header().Get("Location"))
}

func TestAuthCallback_MissingCode(t *testing.T) {
	h, s := newTestHandler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://app.example.com/login?error=No+authorization+code+provided", w.Header().Get("Location"))
	assert.Zero(t, s.exchanger.calls)
}

func TestAuthCallback_ExchangeFailureRedirectsWithMessage(t *testing.T) {
	h, s := newTestHandler()
	s.exchanger.err = errors.New("code exchange rejected: invalid grant")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc123", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "https://app.example.com/login?error=")
	assert.Contains(t, w.Header().Get("Location"), "invalid+grant")
	assert.Nil(t, s.profiles.upserted)
}

func TestAuthCallback_SuccessUpsertsProfileAndRedirectsHome(t *testing.T) {
	h, s := newTestHandler()
	s.exchanger.session = &identity.Session{
		AccessToken: "token",
		User: identity.SessionUser{
			ID:    "user-1",
			Email: "ada@example.com",
			Metadata: map[string]string{
				"full_name": "Ada Lovelace",
			},
		},
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc123", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://app.example.com/", w.Header().Get("Location"))
	assert.NotNil(t, s.profiles.upserted)
	assert.Equal(t, "user-1", s.profiles.upserted.ID)
	assert.Equal(t, "ada@example.com", s.profiles.upserted.Email)
	assert.Equal(t, "Ada Lovelace", s.profiles.upserted.FullName)
}

func TestAuthCallback_ProfileUpsertFailureStillRedirectsHome(t *testing.T) {
	h, s := newTestHandler()
	s.exchanger.session = &identity.Session{User: identity.SessionUser{ID: "user-1", Email: "ada@example.com"}}
	s.profiles.err = errors.New("database unavailable")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc123", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://app.example.com/", w.Header().Get("Location"))
}
