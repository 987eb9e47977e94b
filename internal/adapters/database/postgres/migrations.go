package postgres

import "github.com/eventfindr/notifier/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.Profile{},
	&entity.Event{},
	&entity.Attendee{},
	&entity.Notification{},
	&entity.NotificationPreference{},
}
