package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/eventfindr/notifier/internal/domain/entity"
)

type NotificationStorage struct {
	db *gorm.DB
}

func NewNotificationStorage(db *gorm.DB) *NotificationStorage {
	return &NotificationStorage{
		db: db,
	}
}

// Create inserts a notification. Inserting a duplicate of the
// (user, event, type, reminder_type) unique index returns
// errorz.AlreadyExists, which callers treat as the dedup signal.
func (s *NotificationStorage) Create(ctx context.Context, notification *entity.Notification) error {
	return translate(s.db.WithContext(ctx).Create(notification).Error)
}

func (s *NotificationStorage) Get(ctx context.Context, id string) (*entity.Notification, error) {
	var notification entity.Notification
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error
	if err != nil {
		return nil, translate(err)
	}
	return &notification, nil
}

func (s *NotificationStorage) GetByUserID(ctx context.Context, userID string) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (s *NotificationStorage) MarkRead(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Model(&entity.Notification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *NotificationStorage) MarkEmailSent(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Model(&entity.Notification{}).Where("id = ?", id).Update("email_sent", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteReadBefore removes read notifications created before the cutoff and
// returns the number of rows removed.
func (s *NotificationStorage) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&entity.Notification{})
	return res.RowsAffected, res.Error
}
