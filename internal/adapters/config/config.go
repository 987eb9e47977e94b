package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgresStorage "github.com/eventfindr/notifier/internal/adapters/database/postgres"
	redisStorage "github.com/eventfindr/notifier/internal/adapters/database/redis"
	"github.com/eventfindr/notifier/internal/adapters/identity"
	"github.com/eventfindr/notifier/internal/domain/service"
	"github.com/eventfindr/notifier/pkg/logger"
	"github.com/eventfindr/notifier/pkg/smtp"
)

// Config is the fully resolved application configuration. Everything is read
// from the yaml file once here; components receive typed values at
// construction and never touch viper themselves.
type Config struct {
	Database *gorm.DB
	Redis    *redisStorage.Client

	HTTPAddr string
	SiteURL  string
	Debug    bool

	SMTP      smtp.Config
	Identity  identity.Config
	Reminders service.ReminderConfig
	Retention service.RetentionConfig
	Alerts    AlertsConfig
}

// AlertsConfig configures the optional Telegram ops alert channel.
type AlertsConfig struct {
	Enabled  bool
	BotToken string
	ChatID   int64
	Level    zapcore.Level
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("http.addr", ":8080")
	viper.SetDefault("scheduler.interval", "15m")
	viper.SetDefault("scheduler.lookahead", "48h")
	viper.SetDefault("retention.interval", "24h")
	viper.SetDefault("retention.max-age", "720h")
	viper.SetDefault("service.smtp.port", 587)
	viper.SetDefault("service.identity.timeout", "15s")
	viper.SetDefault("service.redis.lock-ttl", "10m")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

func Get() *Config {
	initConfig()

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=disable TimeZone=UTC",
		viper.GetString("service.database.user"),
		viper.GetString("service.database.password"),
		viper.GetString("service.database.name"),
		viper.GetString("service.database.host"),
		viper.GetInt("service.database.port"),
	)

	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the notification storage relies on for reminder dedup.
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Log.Panicf("Failed to connect to the database: %v", err)
	} else {
		logger.Log.Info("Successfully connected to the database")
	}

	if errMigrate := database.AutoMigrate(postgresStorage.Migrations...); errMigrate != nil {
		logger.Log.Panicf("Failed to migrate database: %v", errMigrate)
	}

	redisClient, err := redisStorage.New(redisStorage.Options{
		Host:     viper.GetString("service.redis.host"),
		Port:     viper.GetString("service.redis.port"),
		Password: viper.GetString("service.redis.password"),
		LockTTL:  viper.GetDuration("service.redis.lock-ttl"),
	})
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	} else {
		logger.Log.Info("Successfully connected to redis")
	}

	return &Config{
		Database: database,
		Redis:    redisClient,

		HTTPAddr: viper.GetString("http.addr"),
		SiteURL:  viper.GetString("http.site-url"),
		Debug:    viper.GetBool("settings.debug"),

		SMTP: smtp.Config{
			Host:     viper.GetString("service.smtp.host"),
			Port:     viper.GetInt("service.smtp.port"),
			Username: viper.GetString("service.smtp.user"),
			Password: viper.GetString("service.smtp.password"),
			From:     viper.GetString("service.smtp.email"),
			FromName: viper.GetString("service.smtp.from-name"),
			Domain:   viper.GetString("service.smtp.domain"),
		},
		Identity: identity.Config{
			BaseURL: viper.GetString("service.identity.url"),
			APIKey:  viper.GetString("service.identity.api-key"),
			Timeout: viper.GetDuration("service.identity.timeout"),
		},
		Reminders: service.ReminderConfig{
			Interval:  viper.GetDuration("scheduler.interval"),
			Lookahead: viper.GetDuration("scheduler.lookahead"),
		},
		Retention: service.RetentionConfig{
			Interval: viper.GetDuration("retention.interval"),
			MaxAge:   viper.GetDuration("retention.max-age"),
		},
		Alerts: AlertsConfig{
			Enabled:  viper.GetBool("settings.alerts.enabled"),
			BotToken: viper.GetString("settings.alerts.bot-token"),
			ChatID:   viper.GetInt64("settings.alerts.chat-id"),
			Level:    zapcore.Level(viper.GetInt("settings.alerts.level")),
		},
	}
}
