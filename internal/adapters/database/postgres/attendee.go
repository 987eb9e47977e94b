package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/eventfindr/notifier/internal/domain/entity"
)

type AttendeeStorage struct {
	db *gorm.DB
}

func NewAttendeeStorage(db *gorm.DB) *AttendeeStorage {
	return &AttendeeStorage{
		db: db,
	}
}

func (s *AttendeeStorage) Create(ctx context.Context, attendee *entity.Attendee) (*entity.Attendee, error) {
	err := s.db.WithContext(ctx).Create(&attendee).Error
	if err != nil {
		return nil, translate(err)
	}
	return attendee, nil
}

func (s *AttendeeStorage) Get(ctx context.Context, eventID, userID string) (*entity.Attendee, error) {
	var attendee entity.Attendee
	err := s.db.WithContext(ctx).Where("event_id = ? AND user_id = ?", eventID, userID).First(&attendee).Error
	if err != nil {
		return nil, translate(err)
	}
	return &attendee, nil
}

func (s *AttendeeStorage) Delete(ctx context.Context, eventID, userID string) error {
	res := s.db.WithContext(ctx).Where("event_id = ? AND user_id = ?", eventID, userID).Delete(&entity.Attendee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *AttendeeStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.Attendee, error) {
	var attendees []entity.Attendee
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&attendees).Error
	return attendees, err
}

func (s *AttendeeStorage) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Attendee{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}
