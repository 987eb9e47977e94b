package service

import (
	"context"

	"github.com/eventfindr/notifier/internal/domain/entity"
)

type NotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) error
	Get(ctx context.Context, id string) (*entity.Notification, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type NotificationService struct {
	storage NotificationStorage
}

func NewNotificationService(storage NotificationStorage) *NotificationService {
	return &NotificationService{
		storage: storage,
	}
}

func (s *NotificationService) Get(ctx context.Context, id string) (*entity.Notification, error) {
	return s.storage.Get(ctx, id)
}

func (s *NotificationService) GetByUserID(ctx context.Context, userID string) ([]entity.Notification, error) {
	return s.storage.GetByUserID(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.storage.MarkRead(ctx, id)
}
