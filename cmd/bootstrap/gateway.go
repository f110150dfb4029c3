package bootstrap

import (
	"booking-admission/internal/domain/inventory"
	"booking-admission/internal/infra/gateway"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewHotelGateway,
			fx.As(new(commands.InventoryGateway[*inventory.HotelSnapshot])),
		),
		fx.Annotate(
			NewAirlineGateway,
			fx.As(new(commands.InventoryGateway[*inventory.AirlineSnapshot])),
		),
	),
)

func NewHotelGateway(cfg config.Config) *gateway.HotelGateway {
	return gateway.NewHotelGateway(gateway.NewClient(cfg.Hotel))
}

func NewAirlineGateway(cfg config.Config) *gateway.AirlineGateway {
	return gateway.NewAirlineGateway(gateway.NewClient(cfg.Airline))
}
