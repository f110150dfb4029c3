package components

import (
	"booking-admission/internal/infra/idempotency"
	"booking-admission/internal/infra/ledger"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/usecase/commands"
	"booking-admission/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
		fx.Annotate(
			ledger.NewBookingLedger,
			fx.As(new(commands.BookingLedger)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			idempotency.NewRedisStore,
			fx.As(new(commands.IdempotencyStore)),
		),
	),
)
