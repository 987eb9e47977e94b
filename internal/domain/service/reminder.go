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

type reminderEventStorage interface {
	GetUpcoming(ctx context.Context, from, to time.Time) ([]entity.Event, error)
}

type reminderAttendeeStorage interface {
	GetByEventID(ctx context.Context, eventID string) ([]entity.Attendee, error)
}

type reminderNotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) error
}

type reminderPreferenceStorage interface {
	GetByUserID(ctx context.Context, userID string) (*entity.NotificationPreference, error)
}

// ReminderConfig controls the scheduler cadence and scan window. The
// interval and the bucket windows are coupled: an interval wider than the
// narrowest bucket window (1 hour) can skip a bucket entirely, so
// NewReminderService clamps it.
type ReminderConfig struct {
	Interval  time.Duration
	Lookahead time.Duration
}

const (
	defaultInterval  = 15 * time.Minute
	defaultLookahead = 48 * time.Hour

	// narrowest bucket window width; see bucketFor
	maxInterval = time.Hour
)

// ReminderService scans upcoming events and creates deduplicated reminder
// notifications for their attendees at fixed lead times.
type ReminderService struct {
	logger *types.Logger

	eventStorage        reminderEventStorage
	attendeeStorage     reminderAttendeeStorage
	notificationStorage reminderNotificationStorage
	preferenceStorage   reminderPreferenceStorage

	cfg ReminderConfig
	now func() time.Time
}

func NewReminderService(
	logger *types.Logger,
	eventStorage reminderEventStorage,
	attendeeStorage reminderAttendeeStorage,
	notificationStorage reminderNotificationStorage,
	preferenceStorage reminderPreferenceStorage,
	cfg ReminderConfig,
) *ReminderService {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Interval > maxInterval {
		logger.Warnf("reminder interval %s exceeds the narrowest bucket window, clamping to %s", cfg.Interval, maxInterval)
		cfg.Interval = maxInterval
	}
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = defaultLookahead
	}

	return &ReminderService{
		logger: logger,

		eventStorage:        eventStorage,
		attendeeStorage:     attendeeStorage,
		notificationStorage: notificationStorage,
		preferenceStorage:   preferenceStorage,

		cfg: cfg,
		now: time.Now,
	}
}

// Start runs the scheduler on its configured cadence until the context is
// cancelled.
func (s *ReminderService) Start(ctx context.Context) {
	s.logger.Infof("Starting reminder scheduler (interval=%s)", s.cfg.Interval)
	go func() {
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				created, err := s.Run(ctx)
				if err != nil {
					s.logger.Errorf("reminder run failed: %v", err)
					continue
				}
				if created > 0 {
					s.logger.Infof("reminder run created %d notifications", created)
				}
			case <-ctx.Done():
				s.logger.Info("Reminder scheduler stopped")
				return
			}
		}
	}()
}

// Run performs one scheduling pass and returns the number of reminder
// notifications created. A failure while fetching the event list fails the
// run; everything below that is handled per (event, attendee) unit so a
// single bad row cannot suppress the rest of the cycle.
func (s *ReminderService) Run(ctx context.Context) (int, error) {
	now := s.now()

	events, err := s.eventStorage.GetUpcoming(ctx, now, now.Add(s.cfg.Lookahead))
	if err != nil {
		return 0, fmt.Errorf("failed to get upcoming events: %w", err)
	}

	created := 0
	for _, event := range events {
		until := event.StartsIn(now)
		if until < 0 {
			continue
		}

		bucket, ok := bucketFor(until)
		if !ok {
			s.logger.Debugf("event %s starts in %s, outside all reminder windows", event.ID, until)
			continue
		}

		created += s.remindAttendees(ctx, event, bucket)
	}

	return created, nil
}

// bucketFor classifies a time-until-start into at most one reminder bucket.
// Bounds are inclusive on both ends.
func bucketFor(until time.Duration) (entity.ReminderBucket, bool) {
	switch {
	case until >= 23*time.Hour && until <= 25*time.Hour:
		return entity.ReminderBucket24h, true
	case until >= 30*time.Minute && until <= 90*time.Minute:
		return entity.ReminderBucket1h, true
	}
	return "", false
}

func (s *ReminderService) remindAttendees(ctx context.Context, event entity.Event, bucket entity.ReminderBucket) int {
	attendees, err := s.attendeeStorage.GetByEventID(ctx, event.ID)
	if err != nil {
		s.logger.Errorf("failed to get attendees for event %s: %v", event.ID, err)
		return 0
	}

	created := 0
	for _, attendee := range attendees {
		preference, err := s.preferenceStorage.GetByUserID(ctx, attendee.UserID)
		if err != nil && !errors.Is(err, errorz.NotFound) {
			s.logger.Errorf("failed to get preferences for user %s: %v", attendee.UserID, err)
			continue
		}
		// no preference row means reminders are enabled at every bucket
		if preference != nil && !preference.WantsBucket(bucket) {
			continue
		}

		notification := s.buildReminder(event, attendee.UserID, bucket)
		if err := s.notificationStorage.Create(ctx, notification); err != nil {
			if errors.Is(err, errorz.AlreadyExists) {
				continue
			}
			s.logger.Errorf("failed to create %s reminder for user %s, event %s: %v", bucket, attendee.UserID, event.ID, err)
			continue
		}

		s.logger.Infof("created %s reminder (user_id=%s, event_id=%s)", bucket, attendee.UserID, event.ID)
		created++
	}

	return created
}

func (s *ReminderService) buildReminder(event entity.Event, userID string, bucket entity.ReminderBucket) *entity.Notification {
	var title, message string
	switch bucket {
	case entity.ReminderBucket24h:
		title = fmt.Sprintf("Event Tomorrow: %s", event.Title)
		message = fmt.Sprintf("%s starts tomorrow at %s at %s.", event.Title, event.StartTime.Format("3:04 PM"), event.Location)
	case entity.ReminderBucket1h:
		title = fmt.Sprintf("Event Starting Soon: %s", event.Title)
		message = fmt.Sprintf("%s starts in about an hour at %s.", event.Title, event.Location)
	}

	eventID := event.ID
	return &entity.Notification{
		UserID:       userID,
		EventID:      &eventID,
		Type:         entity.NotificationTypeReminder,
		ReminderType: bucket,
		Title:        title,
		Message:      message,
		Metadata: datatypes.JSONMap{
			"reminder_type": string(bucket),
			"event_start":   event.StartTime.Format(time.RFC3339),
		},
	}
}
