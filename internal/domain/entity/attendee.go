package entity

import "time"

// Attendee is the registration of a user for an event. A user can be
// registered for an event at most once.
type Attendee struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EventID   string `gorm:"not null;type:uuid;uniqueIndex:uniq_attendee_event_user"`
	UserID    string `gorm:"not null;type:uuid;uniqueIndex:uniq_attendee_event_user"`
	CreatedAt time.Time

	Event Event   `gorm:"foreignKey:EventID"`
	User  Profile `gorm:"foreignKey:UserID"`
}
