package components

import (
	"booking-admission/internal/domain/inventory"
	"booking-admission/internal/pkg/clock"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/usecase"
	"booking-admission/internal/usecase/commands"
	"booking-admission/internal/usecase/queries"

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
	func(cfg config.Config) config.ChecksConfig { return cfg.Checks },
	func(cfg config.Config) config.APIAuthConfig { return cfg.APIAuth },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCoordinator[*inventory.HotelSnapshot],
		commands.NewCoordinator[*inventory.AirlineSnapshot],
		commands.NewAuthCommands,
		commands.NewHotelAdmission,
		commands.NewAirlineAdmission,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
