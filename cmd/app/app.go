package app

import (
	"context"

	"github.com/eventfindr/notifier/internal/adapters/alerts"
	"github.com/eventfindr/notifier/internal/adapters/config"
	httpController "github.com/eventfindr/notifier/internal/adapters/controller/http"
	postgresStorage "github.com/eventfindr/notifier/internal/adapters/database/postgres"
	"github.com/eventfindr/notifier/internal/adapters/identity"
	"github.com/eventfindr/notifier/internal/domain/service"
	"github.com/eventfindr/notifier/pkg/logger"
	"github.com/eventfindr/notifier/pkg/smtp"
)

// App wires storages, services and the HTTP controller together.
type App struct {
	cfg *config.Config

	reminders *service.ReminderService
	retention *service.RetentionService
	handler   *httpController.Handler
}

func New(cfg *config.Config) (*App, error) {
	schedulerLogger, err := logger.Named("scheduler")
	if err != nil {
		return nil, err
	}
	dispatchLogger, err := logger.Named("dispatch")
	if err != nil {
		return nil, err
	}
	httpLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}

	if cfg.Alerts.Enabled {
		tg, errAlerts := alerts.NewTelegram(cfg.Alerts.BotToken, cfg.Alerts.ChatID, cfg.Alerts.Level)
		if errAlerts != nil {
			logger.Log.Errorf("Failed to set up telegram alerts: %v", errAlerts)
		} else {
			logger.SetLogHook(tg.Hook())
		}
	}

	eventStorage := postgresStorage.NewEventStorage(cfg.Database)
	attendeeStorage := postgresStorage.NewAttendeeStorage(cfg.Database)
	notificationStorage := postgresStorage.NewNotificationStorage(cfg.Database)
	preferenceStorage := postgresStorage.NewPreferenceStorage(cfg.Database)
	profileStorage := postgresStorage.NewProfileStorage(cfg.Database)

	reminders := service.NewReminderService(
		schedulerLogger,
		eventStorage,
		attendeeStorage,
		notificationStorage,
		preferenceStorage,
		cfg.Reminders,
	)
	retention := service.NewRetentionService(schedulerLogger, notificationStorage, cfg.Retention)
	dispatch := service.NewDispatchService(
		dispatchLogger,
		notificationStorage,
		smtp.NewClient(cfg.SMTP),
		cfg.Redis.Locks,
	)

	events := service.NewEventService(eventStorage)
	attendees := service.NewAttendeeService(httpLogger, attendeeStorage, eventStorage, notificationStorage, preferenceStorage)
	notifications := service.NewNotificationService(notificationStorage)
	preferences := service.NewPreferenceService(preferenceStorage)

	handler := httpController.NewHandler(
		httpLogger,
		httpController.Config{
			Addr:    cfg.HTTPAddr,
			SiteURL: cfg.SiteURL,
			Debug:   cfg.Debug,
		},
		reminders,
		retention,
		dispatch,
		identity.New(cfg.Identity),
		profileStorage,
		httpController.NewEventRoutes(httpLogger, events, attendees),
		httpController.NewNotificationRoutes(httpLogger, notifications, preferences),
	)

	return &App{
		cfg: cfg,

		reminders: reminders,
		retention: retention,
		handler:   handler,
	}, nil
}

// Start launches the background schedulers and blocks serving HTTP.
func (a *App) Start(ctx context.Context) error {
	a.reminders.Start(ctx)
	a.retention.Start(ctx)
	return a.handler.Run()
}
