package entity

import "time"

// Profile mirrors the identity provider's user record inside the service's
// own database. The ID is the provider-issued user UUID.
type Profile struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Email     string `gorm:"not null;uniqueIndex"`
	FullName  string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
