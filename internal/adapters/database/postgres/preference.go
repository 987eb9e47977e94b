package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eventfindr/notifier/internal/domain/entity"
)

type PreferenceStorage struct {
	db *gorm.DB
}

func NewPreferenceStorage(db *gorm.DB) *PreferenceStorage {
	return &PreferenceStorage{
		db: db,
	}
}

// GetByUserID returns the user's preference row, or errorz.NotFound when the
// user has never saved preferences.
func (s *PreferenceStorage) GetByUserID(ctx context.Context, userID string) (*entity.NotificationPreference, error) {
	var preference entity.NotificationPreference
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&preference).Error
	if err != nil {
		return nil, translate(err)
	}
	return &preference, nil
}

// Upsert inserts the preference row or updates the existing one for the user.
func (s *PreferenceStorage) Upsert(ctx context.Context, preference *entity.NotificationPreference) (*entity.NotificationPreference, error) {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"reminders_enabled",
				"confirmations_enabled",
				"updates_enabled",
				"reminder_lead_times",
				"updated_at",
			}),
		}).
		Create(preference).Error
	if err != nil {
		return nil, err
	}
	return preference, nil
}
