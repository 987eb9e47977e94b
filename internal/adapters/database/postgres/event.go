package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/eventfindr/notifier/internal/domain/entity"
)

type EventStorage struct {
	db *gorm.DB
}

func NewEventStorage(db *gorm.DB) *EventStorage {
	return &EventStorage{
		db: db,
	}
}

// Create is a function that creates a new event in the database.
func (s *EventStorage) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Create(&event).Error
	return event, err
}

// Get is a function that gets an event from the database by id.
func (s *EventStorage) Get(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

// GetAll is a function that gets all events from the database.
func (s *EventStorage) GetAll(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).Order("start_time").Find(&events).Error
	return events, err
}

// GetUpcoming returns events starting inside the [from, to] window,
// soonest first.
func (s *EventStorage) GetUpcoming(ctx context.Context, from, to time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("start_time >= ? AND start_time <= ?", from, to).
		Order("start_time").
		Find(&events).Error
	return events, err
}

// Update is a function that updates an event in the database.
func (s *EventStorage) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Save(&event).Error
	return event, err
}

// Count is a function that gets the count of events from the database.
func (s *EventStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Event{}).Count(&count).Error
	return count, err
}
