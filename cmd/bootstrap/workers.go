package bootstrap

import (
	"context"
	"log/slog"

	"hotel-pms/internal/infra/messaging"
	"hotel-pms/internal/infra/otafeed"
	"hotel-pms/internal/pkg/config"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("workers",
	fx.Invoke(
		startQueueWorker,
		startCalendarSync,
		startOTAFeed,
	),
)

// runInBackground starts run on OnStart and cancels it on OnStop, waiting
// for it to return or for the stop deadline.
func runInBackground(lc fx.Lifecycle, name string, run func(ctx context.Context) error) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("Starting worker", "worker", name)
			go func() {
				defer close(done)
				if err := run(ctx); err != nil && ctx.Err() == nil {
					slog.Error("Worker stopped", "worker", name, "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				slog.Warn("Worker did not stop in time", "worker", name)
			}
			return nil
		},
	})
}

func startQueueWorker(lc fx.Lifecycle, queue *commands.OTAQueue, cfg config.Config) {
	runInBackground(lc, "ota-queue", func(ctx context.Context) error {
		queue.Poll(ctx, cfg.OTA.PollInterval)
		return nil
	})
}

func startCalendarSync(lc fx.Lifecycle, uow shared.UnitOfWork, gateway commands.CalendarGateway, cfg config.Config) {
	if gateway == nil || cfg.AMQP.URL == "" {
		return
	}
	calSync := commands.NewCalendarSync(uow, gateway)
	consumer := messaging.NewConsumer(cfg.AMQP.URL, cfg.AMQP.Queue)
	runInBackground(lc, "calendar-sync", func(ctx context.Context) error {
		return consumer.Run(ctx, calSync.HandleReservationChanged)
	})
}

func startOTAFeed(lc fx.Lifecycle, queue *commands.OTAQueue, cfg config.Config) {
	if len(cfg.Kafka.Brokers) == 0 {
		slog.Info("Kafka not configured, OTA feed reader disabled")
		return
	}
	reader := otafeed.NewReader(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, queue)
	runInBackground(lc, "ota-feed", reader.Run)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return reader.Close()
		},
	})
}
