package routes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Infra holds the process-wide collaborators shared by every handler.
type Infra struct {
	Clock  timezone.Clock
	Locker lock.Locker
	Images storage.ImageStore
	Audit  *audit.Dispatcher

	redis *redis.Client
}

// NewInfra picks the Redis slot lock when REDIS_URL is set and the S3 image
// store when a bucket is configured.
func NewInfra(ctx context.Context, db *gorm.DB, cfg *config.Config) (*Infra, error) {
	inf := &Infra{
		Clock:  timezone.NewSystemClock(cfg.Timezone),
		Locker: lock.NewLocalLocker(),
		Audit:  audit.NewDispatcher(audit.New(db)),
	}

	if cfg.RedisURL != "" {
		client, err := lock.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			inf.Audit.Close()
			return nil, fmt.Errorf("redis: %w", err)
		}
		inf.redis = client
		inf.Locker = lock.NewRedisLocker(client)
		slog.Info("slot lock backend", "backend", "redis")
	} else {
		slog.Info("slot lock backend", "backend", "local")
	}

	if cfg.S3.Enabled() {
		inf.Images = storage.NewS3ImageStore(cfg.S3)
		slog.Info("barber image storage", "bucket", cfg.S3.Bucket)
	}

	return inf, nil
}

// Close flushes pending audit rows and drops the Redis connection.
func (i *Infra) Close() {
	i.Audit.Close()
	if i.redis != nil {
		if err := i.redis.Close(); err != nil {
			slog.Warn("redis close failed", "error", err)
		}
	}
}
