package components

import (
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/pkg/config"
	"hotel-pms/internal/usecase"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/queries"
	"hotel-pms/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewReconciler,
		NewOTAQueue,
		func(q *commands.OTAQueue) commands.QueueCommands {
			return q
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewOTAQueue(uow shared.UnitOfWork, reconciler *commands.Reconciler, publisher shared.SyncPublisher, clk clock.Clock, cfg config.Config) *commands.OTAQueue {
	return commands.NewOTAQueue(uow, reconciler, publisher, clk, int(cfg.OTA.BatchSize))
}
