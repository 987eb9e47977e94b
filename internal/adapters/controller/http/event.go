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

type EventRoutes struct {
	logger    *types.Logger
	events    *service.EventService
	attendees *service.AttendeeService
}

func NewEventRoutes(logger *types.Logger, events *service.EventService, attendees *service.AttendeeService) *EventRoutes {
	return &EventRoutes{
		logger:    logger,
		events:    events,
		attendees: attendees,
	}
}

func (r *EventRoutes) create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation_error", Message: err.Error()})
		return
	}

	event, err := r.events.Create(c.Request.Context(), &entity.Event{
		OrganizerID: req.OrganizerID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		Categories:  req.Categories,
	})
	if err != nil {
		r.logger.Errorf("failed to create event: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (r *EventRoutes) list(c *gin.Context) {
	events, err := r.events.GetAll(c.Request.Context())
	if err != nil {
		r.logger.Errorf("failed to list events: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to list events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func (r *EventRoutes) get(c *gin.Context) {
	event, err := r.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not_found", Message: "event not found"})
			return
		}
		r.logger.Errorf("failed to get event %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to get event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (r *EventRoutes) update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation_error", Message: err.Error()})
		return
	}

	event, err := r.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not_found", Message: "event not found"})
			return
		}
		r.logger.Errorf("failed to get event %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to get event"})
		return
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.Location != "" {
		event.Location = req.Location
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.Categories != nil {
		event.Categories = req.Categories
	}

	updated, err := r.events.Update(c.Request.Context(), event)
	if err != nil {
		r.logger.Errorf("failed to update event %s: %v", event.ID, err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to update event"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (r *EventRoutes) register(c *gin.Context) {
	var req dto.RegisterAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation_error", Message: err.Error()})
		return
	}

	attendee, err := r.attendees.Register(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, errorz.AlreadyRegistered):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "already_registered", Message: err.Error()})
		case errors.Is(err, errorz.NotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not_found", Message: "event not found"})
		default:
			r.logger.Errorf("failed to register user %s for event %s: %v", req.UserID, c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to register"})
		}
		return
	}

	c.JSON(http.StatusCreated, attendee)
}

func (r *EventRoutes) unregister(c *gin.Context) {
	err := r.attendees.Unregister(c.Request.Context(), c.Param("id"), c.Param("userID"))
	if err != nil {
		switch {
		case errors.Is(err, errorz.NotRegistered), errors.Is(err, errorz.NotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not_found", Message: err.Error()})
		default:
			r.logger.Errorf("failed to unregister user %s from event %s: %v", c.Param("userID"), c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: "failed to unregister"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
