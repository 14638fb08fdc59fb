package bootstrap

import (
	"context"
	"log/slog"

	"hotel-pms/internal/infra/cache"
	"hotel-pms/internal/infra/calendar"
	"hotel-pms/internal/infra/messaging"
	"hotel-pms/internal/infra/readstore"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/config"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// IntegrationModule wires the optional external systems. Each one is
// skipped when its connection settings are empty.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewRedisClient,
		NewMasterData,
		NewSyncPublisher,
		NewCalendarGateway,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := cache.NewClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	if client == nil {
		slog.Info("Redis not configured, OTA master lookups are uncached")
		return nil, nil
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewMasterData(q *sqlc.Queries, db sqlc.DBTX, rdb *redis.Client, cfg config.Config) shared.MasterData {
	store := readstore.NewOTAMasterReadStore(q, db)
	if rdb == nil {
		return store
	}
	return cache.NewMasterData(store, rdb, cfg.Redis.TTL)
}

func NewSyncPublisher(lc fx.Lifecycle, cfg config.Config) shared.SyncPublisher {
	if cfg.AMQP.URL == "" {
		slog.Info("RabbitMQ not configured, reservation changes are not published")
		return messaging.NopPublisher{}
	}
	pub := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}

func NewCalendarGateway(cfg config.Config) (commands.CalendarGateway, error) {
	if cfg.Calendar.CredentialsFile == "" {
		slog.Info("Google Calendar not configured, calendar sync disabled")
		return nil, nil
	}
	return calendar.NewGoogleGateway(context.Background(), cfg.Calendar.CredentialsFile, cfg.Calendar.CalendarIDs)
}
