package service

import (
	"context"
	"fmt"

	"github.com/eventfindr/notifier/internal/domain/common/errorz"
	"github.com/eventfindr/notifier/internal/domain/dto"
	"github.com/eventfindr/notifier/internal/domain/entity"
	"github.com/eventfindr/notifier/internal/domain/utils/email"
	"github.com/eventfindr/notifier/pkg/logger/types"
)

type dispatchNotificationStorage interface {
	MarkEmailSent(ctx context.Context, id string) error
}

type emailSender interface {
	Send(ctx context.Context, to, name string, msg email.Rendered) error
}

type dispatchLocker interface {
	Acquire(ctx context.Context, notificationID string) (bool, error)
	Release(ctx context.Context, notificationID string) error
}

// DispatchService renders a notification email and delivers it. It is
// stateless and safe to call concurrently for different notifications;
// concurrent dispatch of the same notification id is rejected through the
// lock while it is held.
type DispatchService struct {
	logger *types.Logger

	notificationStorage dispatchNotificationStorage
	sender              emailSender
	locks               dispatchLocker
}

// NewDispatchService builds a DispatchService. locks may be nil; dispatch
// then runs without the duplicate-send guard.
func NewDispatchService(
	logger *types.Logger,
	notificationStorage dispatchNotificationStorage,
	sender emailSender,
	locks dispatchLocker,
) *DispatchService {
	return &DispatchService{
		logger: logger,

		notificationStorage: notificationStorage,
		sender:              sender,
		locks:               locks,
	}
}

// Dispatch renders and sends the email for one notification, then marks the
// record sent. Delivery failure is returned to the caller and leaves the
// record untouched; the invoking cadence is the retry layer.
func (s *DispatchService) Dispatch(ctx context.Context, req dto.DispatchRequest) error {
	locked, err := s.acquireLock(ctx, req.NotificationID)
	if err != nil {
		return err
	}

	rendered := email.Render(email.Content{
		Type:          entity.NotificationType(req.NotificationType),
		Title:         req.Title,
		Message:       req.Message,
		UserName:      req.UserName,
		EventTitle:    req.EventTitle,
		EventDate:     req.EventDate,
		EventTime:     req.EventTime,
		EventLocation: req.EventLocation,
	})

	if err := s.sender.Send(ctx, req.UserEmail, req.UserName, rendered); err != nil {
		if locked {
			s.releaseLock(req.NotificationID)
		}
		return err
	}

	if err := s.notificationStorage.MarkEmailSent(ctx, req.NotificationID); err != nil {
		return fmt.Errorf("email sent but failed to mark notification %s: %w", req.NotificationID, err)
	}

	s.logger.Infof("dispatched notification %s to %s", req.NotificationID, req.UserEmail)
	return nil
}

// acquireLock takes the per-notification dispatch lock. A redis failure
// fails open: the storage-level dedup index still prevents duplicate rows,
// only the double-email guard is weakened.
func (s *DispatchService) acquireLock(ctx context.Context, notificationID string) (bool, error) {
	if s.locks == nil {
		return false, nil
	}

	ok, err := s.locks.Acquire(ctx, notificationID)
	if err != nil {
		s.logger.Warnf("dispatch lock unavailable for %s, proceeding without it: %v", notificationID, err)
		return false, nil
	}
	if !ok {
		return false, errorz.DispatchInProgress
	}
	return true, nil
}

func (s *DispatchService) releaseLock(notificationID string) {
	// the surrounding request context may already be cancelled
	if err := s.locks.Release(context.Background(), notificationID); err != nil {
		s.logger.Warnf("failed to release dispatch lock for %s: %v", notificationID, err)
	}
}
