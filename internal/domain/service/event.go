package service

import (
	"context"
	"time"

	"github.com/eventfindr/notifier/internal/domain/entity"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetAll(ctx context.Context) ([]entity.Event, error)
	GetUpcoming(ctx context.Context, from, to time.Time) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Count(ctx context.Context) (int64, error)
}

type EventService struct {
	storage EventStorage
}

func NewEventService(storage EventStorage) *EventService {
	return &EventService{
		storage: storage,
	}
}

func (s *EventService) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	return s.storage.Create(ctx, event)
}

func (s *EventService) Get(ctx context.Context, id string) (*entity.Event, error) {
	return s.storage.Get(ctx, id)
}

func (s *EventService) GetAll(ctx context.Context) ([]entity.Event, error) {
	return s.storage.GetAll(ctx)
}

func (s *EventService) GetUpcoming(ctx context.Context, from, to time.Time) ([]entity.Event, error) {
	return s.storage.GetUpcoming(ctx, from, to)
}

func (s *EventService) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	return s.storage.Update(ctx, event)
}

func (s *EventService) Count(ctx context.Context) (int64, error) {
	return s.storage.Count(ctx)
}
