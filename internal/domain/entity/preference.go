package entity

import (
	"time"

	"github.com/lib/pq"
)

// NotificationPreference holds per-user notification flags. A user without a
// row gets the defaults: everything enabled, reminders at every bucket.
type NotificationPreference struct {
	ID                   string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID               string `gorm:"not null;type:uuid;uniqueIndex"`
	RemindersEnabled     bool   `gorm:"not null;default:true"`
	ConfirmationsEnabled bool   `gorm:"not null;default:true"`
	UpdatesEnabled       bool   `gorm:"not null;default:true"`
	// ReminderLeadTimes lists the hours-before-event offsets the user wants
	// reminders at. Empty means all supported buckets.
	ReminderLeadTimes pq.Int64Array `gorm:"type:integer[]"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// WantsBucket reports whether reminders should fire for the given bucket.
func (p *NotificationPreference) WantsBucket(bucket ReminderBucket) bool {
	if !p.RemindersEnabled {
		return false
	}
	if len(p.ReminderLeadTimes) == 0 {
		return true
	}
	for _, h := range p.ReminderLeadTimes {
		if h == bucket.Hours() {
			return true
		}
	}
	return false
}
