package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventfindr/notifier/internal/adapters/database/redis/locks"
)

type Client struct {
	Locks *locks.Storage
}

type Options struct {
	Host     string
	Port     string
	Password string
	LockTTL  time.Duration
}

func New(opts Options) (*Client, error) {
	lockStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := lockStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping lock storage: %w", err)
	}

	return &Client{
		Locks: locks.NewStorage(lockStorage, opts.LockTTL),
	}, nil
}
