package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfindr/notifier/internal/adapters/identity"
	"github.com/eventfindr/notifier/internal/domain/dto"
	"github.com/eventfindr/notifier/internal/domain/entity"
	"github.com/eventfindr/notifier/pkg/logger/types"
)

type reminderRunner interface {
	Run(ctx context.Context) (int, error)
}

type retentionRunner interface {
	Run(ctx context.Context) (int64, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, req dto.DispatchRequest) error
}

type sessionExchanger interface {
	ExchangeCode(ctx context.Context, code string) (*identity.Session, error)
}

type profileStorage interface {
	Upsert(ctx context.Context, profile *entity.Profile) (*entity.Profile, error)
}

// Config carries handler-level settings.
type Config struct {
	Addr    string
	SiteURL string
	Debug   bool
}

type Handler struct {
	logger *types.Logger
	router *gin.Engine
	cfg    Config

	reminders     reminderRunner
	retention     retentionRunner
	dispatch      dispatcher
	identity      sessionExchanger
	profiles      profileStorage
	events        *EventRoutes
	notifications *NotificationRoutes
}

func NewHandler(
	logger *types.Logger,
	cfg Config,
	reminders reminderRunner,
	retention retentionRunner,
	dispatch dispatcher,
	exchanger sessionExchanger,
	profiles profileStorage,
	events *EventRoutes,
	notifications *NotificationRoutes,
) *Handler {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	h := &Handler{
		logger: logger,
		router: gin.New(),
		cfg:    cfg,

		reminders:     reminders,
		retention:     retention,
		dispatch:      dispatch,
		identity:      exchanger,
		profiles:      profiles,
		events:        events,
		notifications: notifications,
	}

	h.router.Use(gin.Recovery())
	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) Run() error {
	h.logger.Infof("HTTP server listening on %s", h.cfg.Addr)
	return h.router.Run(h.cfg.Addr)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)

	h.router.POST("/jobs/reminders", h.runReminders)
	h.router.POST("/jobs/retention", h.runRetention)
	h.router.POST("/notifications/dispatch", h.dispatchNotification)

	h.router.GET("/auth/callback", h.authCallback)

	h.router.POST("/events", h.events.create)
	h.router.GET("/events", h.events.list)
	h.router.GET("/events/:id", h.events.get)
	h.router.PUT("/events/:id", h.events.update)
	h.router.POST("/events/:id/attendees", h.events.register)
	h.router.DELETE("/events/:id/attendees/:userID", h.events.unregister)

	h.router.GET("/users/:id/notifications", h.notifications.listForUser)
	h.router.POST("/notifications/:id/read", h.notifications.markRead)
	h.router.GET("/users/:id/preferences", h.notifications.getPreferences)
	h.router.PUT("/users/:id/preferences", h.notifications.updatePreferences)
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
