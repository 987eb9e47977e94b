package service

import (
	"context"
	"errors"

	"github.com/eventfindr/notifier/internal/domain/common/errorz"
	"github.com/eventfindr/notifier/internal/domain/entity"
)

type PreferenceStorage interface {
	GetByUserID(ctx context.Context, userID string) (*entity.NotificationPreference, error)
	Upsert(ctx context.Context, preference *entity.NotificationPreference) (*entity.NotificationPreference, error)
}

type PreferenceService struct {
	storage PreferenceStorage
}

func NewPreferenceService(storage PreferenceStorage) *PreferenceService {
	return &PreferenceService{
		storage: storage,
	}
}

// Get returns the user's preferences, falling back to the defaults when
// no row exists.
func (s *PreferenceService) Get(ctx context.Context, userID string) (*entity.NotificationPreference, error) {
	preference, err := s.storage.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return &entity.NotificationPreference{
				UserID:               userID,
				RemindersEnabled:     true,
				ConfirmationsEnabled: true,
				UpdatesEnabled:       true,
			}, nil
		}
		return nil, err
	}
	return preference, nil
}

func (s *PreferenceService) Upsert(ctx context.Context, preference *entity.NotificationPreference) (*entity.NotificationPreference, error) {
	return s.storage.Upsert(ctx, preference)
}
