package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/eventfindr/notifier/internal/domain/common/errorz"
	"github.com/eventfindr/notifier/internal/domain/entity"
	"github.com/eventfindr/notifier/pkg/logger/types"
)

type AttendeeStorage interface {
	Create(ctx context.Context, attendee *entity.Attendee) (*entity.Attendee, error)
	Get(ctx context.Context, eventID, userID string) (*entity.Attendee, error)
	Delete(ctx context.Context, eventID, userID string) error
	GetByEventID(ctx context.Context, eventID string) ([]entity.Attendee, error)
	CountByEventID(ctx context.Context, eventID string) (int64, error)
}

type attendeeEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type attendeeNotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) error
}

type attendeePreferenceStorage interface {
	GetByUserID(ctx context.Context, userID string) (*entity.NotificationPreference, error)
}

// AttendeeService manages event registrations. Registration and
// cancellation produce in-app notifications when the user's preferences
// allow them; the notification insert is best-effort and never fails the
// registration itself.
type AttendeeService struct {
	logger *types.Logger

	storage             AttendeeStorage
	eventStorage        attendeeEventStorage
	notificationStorage attendeeNotificationStorage
	preferenceStorage   attendeePreferenceStorage
}

func NewAttendeeService(
	logger *types.Logger,
	storage AttendeeStorage,
	eventStorage attendeeEventStorage,
	notificationStorage attendeeNotificationStorage,
	preferenceStorage attendeePreferenceStorage,
) *AttendeeService {
	return &AttendeeService{
		logger: logger,

		storage:             storage,
		eventStorage:        eventStorage,
		notificationStorage: notificationStorage,
		preferenceStorage:   preferenceStorage,
	}
}

func (s *AttendeeService) Register(ctx context.Context, eventID, userID string) (*entity.Attendee, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	attendee, err := s.storage.Create(ctx, &entity.Attendee{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		if errors.Is(err, errorz.AlreadyExists) {
			return nil, errorz.AlreadyRegistered
		}
		return nil, err
	}

	s.notify(ctx, event, userID, entity.NotificationTypeConfirmation,
		fmt.Sprintf("Registration Confirmed: %s", event.Title),
		fmt.Sprintf("You're registered for %s on %s at %s.", event.Title, event.StartTime.Format("Jan 2, 2006"), event.Location),
	)

	return attendee, nil
}

func (s *AttendeeService) Unregister(ctx context.Context, eventID, userID string) error {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, eventID, userID); err != nil {
		if errors.Is(err, errorz.NotFound) {
			return errorz.NotRegistered
		}
		return err
	}

	s.notify(ctx, event, userID, entity.NotificationTypeCancellation,
		fmt.Sprintf("Registration Cancelled: %s", event.Title),
		fmt.Sprintf("Your registration for %s has been cancelled.", event.Title),
	)

	return nil
}

func (s *AttendeeService) Get(ctx context.Context, eventID, userID string) (*entity.Attendee, error) {
	return s.storage.Get(ctx, eventID, userID)
}

func (s *AttendeeService) GetByEventID(ctx context.Context, eventID string) ([]entity.Attendee, error) {
	return s.storage.GetByEventID(ctx, eventID)
}

func (s *AttendeeService) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	return s.storage.CountByEventID(ctx, eventID)
}

func (s *AttendeeService) notify(ctx context.Context, event *entity.Event, userID string, notificationType entity.NotificationType, title, message string) {
	preference, err := s.preferenceStorage.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, errorz.NotFound) {
		s.logger.Errorf("failed to get preferences for user %s: %v", userID, err)
		return
	}
	if preference != nil && notificationType == entity.NotificationTypeConfirmation && !preference.ConfirmationsEnabled {
		return
	}

	eventID := event.ID
	err = s.notificationStorage.Create(ctx, &entity.Notification{
		UserID:  userID,
		EventID: &eventID,
		Type:    notificationType,
		Title:   title,
		Message: message,
		Metadata: datatypes.JSONMap{
			"event_start": event.StartTime.Format(time.RFC3339),
		},
	})
	if err != nil && !errors.Is(err, errorz.AlreadyExists) {
		s.logger.Errorf("failed to create %s notification (user_id=%s, event_id=%s): %v", notificationType, userID, event.ID, err)
	}
}
