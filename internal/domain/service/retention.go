package service

import (
	"context"
	"time"

	"github.com/eventfindr/notifier/pkg/logger/types"
)

type retentionNotificationStorage interface {
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type RetentionConfig struct {
	Interval time.Duration
	MaxAge   time.Duration
}

const (
	defaultRetentionInterval = 24 * time.Hour
	defaultRetentionMaxAge   = 30 * 24 * time.Hour
)

// RetentionService deletes read notifications once they age out.
type RetentionService struct {
	logger *types.Logger

	notificationStorage retentionNotificationStorage

	cfg RetentionConfig
	now func() time.Time
}

func NewRetentionService(
	logger *types.Logger,
	notificationStorage retentionNotificationStorage,
	cfg RetentionConfig,
) *RetentionService {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultRetentionInterval
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultRetentionMaxAge
	}

	return &RetentionService{
		logger: logger,

		notificationStorage: notificationStorage,

		cfg: cfg,
		now: time.Now,
	}
}

func (s *RetentionService) Start(ctx context.Context) {
	s.logger.Infof("Starting retention sweep (interval=%s, max-age=%s)", s.cfg.Interval, s.cfg.MaxAge)
	go func() {
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				deleted, err := s.Run(ctx)
				if err != nil {
					s.logger.Errorf("retention sweep failed: %v", err)
					continue
				}
				if deleted > 0 {
					s.logger.Infof("retention sweep deleted %d notifications", deleted)
				}
			case <-ctx.Done():
				s.logger.Info("Retention sweep stopped")
				return
			}
		}
	}()
}

// Run deletes read notifications older than the retention age and returns
// the number removed. Idempotent.
func (s *RetentionService) Run(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.cfg.MaxAge)
	return s.notificationStorage.DeleteReadBefore(ctx, cutoff)
}
