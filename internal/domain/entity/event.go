package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Event struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	OrganizerID string `gorm:"not null;type:uuid"`
	Organizer   Profile
	Title       string `gorm:"not null"`
	Description string
	Location    string         `gorm:"not null"`
	StartTime   time.Time      `gorm:"not null;index"`
	Categories  pq.StringArray `gorm:"type:text[]"`
}

// StartsIn returns the signed duration until the event starts.
// Negative for events already in the past.
func (e *Event) StartsIn(now time.Time) time.Duration {
	return e.StartTime.Sub(now)
}
