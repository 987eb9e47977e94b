package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfindr/notifier/internal/domain/common/errorz"
	"github.com/eventfindr/notifier/internal/domain/dto"
)

// runReminders handles POST /jobs/reminders. The same logic also runs on the
// internal ticker; the endpoint exists so an external cron can drive it.
func (h *Handler) runReminders(c *gin.Context) {
	created, err := h.reminders.Run(c.Request.Context())
	if err != nil {
		h.logger.Errorf("reminder job failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.SchedulerResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SchedulerResponse{
		Success:       true,
		RemindersSent: created,
	})
}

// runRetention handles POST /jobs/retention.
func (h *Handler) runRetention(c *gin.Context) {
	deleted, err := h.retention.Run(c.Request.Context())
	if err != nil {
		h.logger.Errorf("retention job failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.RetentionResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.RetentionResponse{
		Success: true,
		Deleted: deleted,
	})
}

// dispatchNotification handles POST /notifications/dispatch.
func (h *Handler) dispatchNotification(c *gin.Context) {
	var req dto.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := h.dispatch.Dispatch(c.Request.Context(), req); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errorz.DispatchInProgress) {
			status = http.StatusConflict
		}
		h.logger.Errorf("dispatch failed for notification %s: %v", req.NotificationID, err)
		c.JSON(status, dto.DispatchResponse{
			Success:        false,
			NotificationID: req.NotificationID,
			Error:          err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.DispatchResponse{
		Success:        true,
		NotificationID: req.NotificationID,
	})
}
