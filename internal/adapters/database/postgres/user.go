package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eventfindr/notifier/internal/domain/entity"
)

type ProfileStorage struct {
	db *gorm.DB
}

func NewProfileStorage(db *gorm.DB) *ProfileStorage {
	return &ProfileStorage{
		db: db,
	}
}

func (s *ProfileStorage) Get(ctx context.Context, id string) (*entity.Profile, error) {
	var profile entity.Profile
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (s *ProfileStorage) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profile entity.Profile
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// Upsert creates or refreshes the profile row for a provider user. Called
// after every successful code exchange so the local copy tracks the
// provider's record.
func (s *ProfileStorage) Upsert(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "full_name", "avatar_url", "updated_at"}),
		}).
		Create(profile).Error
	if err != nil {
		return nil, err
	}
	return profile, nil
}
