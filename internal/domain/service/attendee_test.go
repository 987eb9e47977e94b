package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eventfindr/notifier/internal/domain/common/errorz"
	"github.com/eventfindr/notifier/internal/domain/entity"
)

// MockAttendeeStore is a mock implementation of AttendeeStorage
type MockAttendeeStore struct {
	mock.Mock
}

func (m *MockAttendeeStore) Create(ctx context.Context, attendee *entity.Attendee) (*entity.Attendee, error) {
	args := m.Called(ctx, attendee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Attendee), args.Error(1)
}

func (m *MockAttendeeStore) Get(ctx context.Context, eventID, userID string) (*entity.Attendee, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Attendee), args.Error(1)
}

func (m *MockAttendeeStore) Delete(ctx context.Context, eventID, userID string) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockAttendeeStore) GetByEventID(ctx context.Context, eventID string) ([]entity.Attendee, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Attendee), args.Error(1)
}

func (m *MockAttendeeStore) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventGetter is a mock implementation of attendeeEventStorage
type MockEventGetter struct {
	mock.Mock
}

func (m *MockEventGetter) Get(ctx context.Context, id string) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func newAttendeeService() (*AttendeeService, *MockAttendeeStore, *MockEventGetter, *MockNotificationStorage, *MockPreferenceStorage) {
	attendees := new(MockAttendeeStore)
	events := new(MockEventGetter)
	notifications := new(MockNotificationStorage)
	preferences := new(MockPreferenceStorage)
	s := NewAttendeeService(testLogger(), attendees, events, notifications, preferences)
	return s, attendees, events, notifications, preferences
}

func attendeeTestEvent() *entity.Event {
	return &entity.Event{
		ID:        "event-1",
		Title:     "Go Meetup",
		Location:  "Community Hall",
		StartTime: time.Date(2025, 6, 11, 18, 0, 0, 0, time.UTC),
	}
}

func TestRegister_CreatesConfirmationNotification(t *testing.T) {
	s, attendees, events, notifications, preferences := newAttendeeService()

	events.On("Get", mock.Anything, "event-1").Return(attendeeTestEvent(), nil)
	attendees.On("Create", mock.Anything, mock.Anything).Return(&entity.Attendee{EventID: "event-1", UserID: "user-1"}, nil)
	preferences.On("GetByUserID", mock.Anything, "user-1").Return(nil, errorz.NotFound)
	notifications.On("Create", mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.Type == entity.NotificationTypeConfirmation &&
			n.UserID == "user-1" &&
			*n.EventID == "event-1" &&
			n.Title == "Registration Confirmed: Go Meetup"
	})).Return(nil)

	attendee, err := s.Register(context.Background(), "event-1", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", attendee.UserID)
	notifications.AssertExpectations(t)
}

func TestRegister_ConfirmationsDisabledSkipsNotification(t *testing.T) {
	s, attendees, events, notifications, preferences := newAttendeeService()

	events.On("Get", mock.Anything, "event-1").Return(attendeeTestEvent(), nil)
	attendees.On("Create", mock.Anything, mock.Anything).Return(&entity.Attendee{EventID: "event-1", UserID: "user-1"}, nil)
	preferences.On("GetByUserID", mock.Anything, "user-1").Return(&entity.NotificationPreference{
		UserID:               "user-1",
		ConfirmationsEnabled: false,
	}, nil)

	_, err := s.Register(context.Background(), "event-1", "user-1")

	assert.NoError(t, err)
	notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateRegistration(t *testing.T) {
	s, attendees, events, notifications, _ := newAttendeeService()

	events.On("Get", mock.Anything, "event-1").Return(attendeeTestEvent(), nil)
	attendees.On("Create", mock.Anything, mock.Anything).Return(nil, errorz.AlreadyExists)

	_, err := s.Register(context.Background(), "event-1", "user-1")

	assert.ErrorIs(t, err, errorz.AlreadyRegistered)
	notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnregister_CreatesCancellationNotification(t *testing.T) {
	s, attendees, events, notifications, preferences := newAttendeeService()

	events.On("Get", mock.Anything, "event-1").Return(attendeeTestEvent(), nil)
	attendees.On("Delete", mock.Anything, "event-1", "user-1").Return(nil)
	preferences.On("GetByUserID", mock.Anything, "user-1").Return(nil, errorz.NotFound)
	notifications.On("Create", mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.Type == entity.NotificationTypeCancellation
	})).Return(nil)

	err := s.Unregister(context.Background(), "event-1", "user-1")

	assert.NoError(t, err)
	notifications.AssertExpectations(t)
}

func TestUnregister_NotRegistered(t *testing.T) {
	s, attendees, events, _, _ := newAttendeeService()

	events.On("Get", mock.Anything, "event-1").Return(attendeeTestEvent(), nil)
	attendees.On("Delete", mock.Anything, "event-1", "user-1").Return(errorz.NotFound)

	err := s.Unregister(context.Background(), "event-1", "user-1")

	assert.ErrorIs(t, err, errorz.NotRegistered)
}
