package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfindr/notifier/internal/domain/common/errorz"
	"github.com/eventfindr/notifier/internal/domain/dto"
	"github.com/eventfindr/notifier/internal/domain/entity"
	"github.com/eventfindr/notifier/internal/domain/service"
	"github.com/eventfindr/notifier/pkg/logger/types"
)

type NotificationRoutes struct {
	logger        *types.Logger
	notifications *service.NotificationService
	preferences   *service.PreferenceService
}

func NewNotificationRoutes(logger *types.Logger, notifications *service.NotificationService, preferences *service.PreferenceService) *NotificationRoutes {
	return &NotificationRoutes{
		logger:        logger,
		notifications: notifications,
		preferences:   preferences,
	}
}

func (r *NotificationRoutes) listForUser(c *gin.Context) {
	notifications, err := r.notifications.GetByUserID(c.Request.Context(), c.Param("id"))
	if err != nil {
		r.logger.Errorf("failed to list notifications for user %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (r *NotificationRoutes) markRead(c *gin.Context) {
	if err := r.notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, errorz.NotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not_found", Message: "notification not found"})
			return
		}
		r.logger.Errorf("failed to mark notification %s read: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to mark read"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (r *NotificationRoutes) getPreferences(c *gin.Context) {
	preference, err := r.preferences.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		r.logger.Errorf("failed to get preferences for user %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to get preferences"})
		return
	}

	c.JSON(http.StatusOK, preference)
}

func (r *NotificationRoutes) updatePreferences(c *gin.Context) {
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation_error", Message: err.Error()})
		return
	}

	current, err := r.preferences.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		r.logger.Errorf("failed to get preferences for user %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to get preferences"})
		return
	}

	if req.RemindersEnabled != nil {
		current.RemindersEnabled = *req.RemindersEnabled
	}
	if req.ConfirmationsEnabled != nil {
		current.ConfirmationsEnabled = *req.ConfirmationsEnabled
	}
	if req.UpdatesEnabled != nil {
		current.UpdatesEnabled = *req.UpdatesEnabled
	}
	if req.ReminderLeadTimes != nil {
		current.ReminderLeadTimes = req.ReminderLeadTimes
	}

	updated, err := r.preferences.Upsert(c.Request.Context(), &entity.NotificationPreference{
		UserID:               c.Param("id"),
		RemindersEnabled:     current.RemindersEnabled,
		ConfirmationsEnabled: current.ConfirmationsEnabled,
		UpdatesEnabled:       current.UpdatesEnabled,
		ReminderLeadTimes:    current.ReminderLeadTimes,
	})
	if err != nil {
		r.logger.Errorf("failed to update preferences for user %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
