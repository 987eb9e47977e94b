package entity

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotificationTypeReminder     NotificationType = "reminder"
	NotificationTypeConfirmation NotificationType = "confirmation"
	NotificationTypeUpdate       NotificationType = "update"
	NotificationTypeCancellation NotificationType = "cancellation"
)

// ReminderBucket names the lead-time window a reminder was created for.
type ReminderBucket string

const (
	ReminderBucket24h ReminderBucket = "24h"
	ReminderBucket1h  ReminderBucket = "1h"
)

// Hours returns the nominal hours-before-event offset of the bucket.
func (b ReminderBucket) Hours() int64 {
	switch b {
	case ReminderBucket24h:
		return 24
	case ReminderBucket1h:
		return 1
	}
	return 0
}

// Notification is immutable after creation except for the IsRead and
// EmailSent flags. The composite unique index on (user, event, type,
// reminder_type) is what prevents duplicate reminders: concurrent scheduler
// runs both attempt the insert and the loser gets a duplicate-key error.
type Notification struct {
	ID           string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID       string           `gorm:"not null;type:uuid;index;uniqueIndex:uniq_notification_dedup"`
	EventID      *string          `gorm:"type:uuid;uniqueIndex:uniq_notification_dedup"`
	Type         NotificationType `gorm:"not null;uniqueIndex:uniq_notification_dedup"`
	ReminderType ReminderBucket   `gorm:"not null;default:'';uniqueIndex:uniq_notification_dedup"`
	Title        string           `gorm:"not null"`
	Message      string           `gorm:"not null"`
	Metadata     datatypes.JSONMap
	IsRead       bool `gorm:"not null;default:false"`
	EmailSent    bool `gorm:"not null;default:false"`
	CreatedAt    time.Time

	User  Profile `gorm:"foreignKey:UserID"`
	Event *Event  `gorm:"foreignKey:EventID"`
}
