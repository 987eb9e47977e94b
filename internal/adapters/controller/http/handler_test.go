package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/eventfindr/notifier/internal/adapters/identity"
	"github.com/eventfindr/notifier/internal/domain/common/errorz"
	"github.com/eventfindr/notifier/internal/domain/dto"
	"github.com/eventfindr/notifier/internal/domain/entity"
	"github.com/eventfindr/notifier/pkg/logger/types"
)

type stubReminders struct {
	count int
	err   error
}

func (s *stubReminders) Run(context.Context) (int, error) { return s.count, s.err }

type stubRetention struct {
	deleted int64
	err     error
}

func (s *stubRetention) Run(context.Context) (int64, error) { return s.deleted, s.err }

type stubDispatcher struct {
	err error
	got *dto.DispatchRequest
}

func (s *stubDispatcher) Dispatch(_ context.Context, req dto.DispatchRequest) error {
	s.got = &req
	return s.err
}

type stubExchanger struct {
	session *identity.Session
	err     error
	calls   int
}

func (s *stubExchanger) ExchangeCode(context.Context, string) (*identity.Session, error) {
	s.calls++
	return s.session, s.err
}

type stubProfiles struct {
	upserted *entity.Profile
	err      error
}

func (s *stubProfiles) Upsert(_ context.Context, profile *entity.Profile) (*entity.Profile, error) {
	s.upserted = profile
	return profile, s.err
}

type handlerStubs struct {
	reminders *stubReminders
	retention *stubRetention
	dispatch  *stubDispatcher
	exchanger *stubExchanger
	profiles  *stubProfiles
}

func newTestHandler() (*Handler, *handlerStubs) {
	s := &handlerStubs{
		reminders: &stubReminders{},
		retention: &stubRetention{},
		dispatch:  &stubDispatcher{},
		exchanger: &stubExchanger{},
		profiles:  &stubProfiles{},
	}
	log := &types.Logger{SugaredLogger: zap.NewNop().Sugar()}
	h := NewHandler(
		log,
		Config{Addr: ":0", SiteURL: "https://app.example.com"},
		s.reminders,
		s.retention,
		s.dispatch,
		s.exchanger,
		s.profiles,
		nil,
		nil,
	)
	return h, s
}

func TestRunReminders_Success(t *testing.T) {
	h, s := newTestHandler()
	s.reminders.count = 4

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs/reminders", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"reminders_sent":4}`, w.Body.String())
}

func TestRunReminders_Failure(t *testing.T) {
	h, s := newTestHandler()
	s.reminders.err = errors.New("database unavailable")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs/reminders", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database unavailable")
}

func TestRunRetention_Success(t *testing.T) {
	h, s := newTestHandler()
	s.retention.deleted = 7

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs/retention", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"deleted":7}`, w.Body.String())
}

func TestDispatchNotification_Success(t *testing.T) {
	h, s := newTestHandler()

	body := `{
		"notification_id": "notif-1",
		"user_email": "ada@example.com",
		"notification_type": "reminder",
		"title": "Event Tomorrow: Go Meetup",
		"message": "Starts tomorrow."
	}`
	req := httptest.NewRequest(http.MethodPost, "/notifications/dispatch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"notification_id":"notif-1"}`, w.Body.String())
	assert.Equal(t, "ada@example.com", s.dispatch.got.UserEmail)
}

func TestDispatchNotification_InvalidBody(t *testing.T) {
	h, s := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/notifications/dispatch", strings.NewReader(`{"user_email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, s.dispatch.got)
}

func TestDispatchNotification_InProgress(t *testing.T) {
	h, s := newTestHandler()
	s.dispatch.err = errorz.DispatchInProgress

	body := `{
		"notification_id": "notif-1",
		"user_email": "ada@example.com",
		"notification_type": "reminder",
		"title": "t",
		"message": "m"
	}`
	req := httptest.NewRequest(http.MethodPost, "/notifications/dispatch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
