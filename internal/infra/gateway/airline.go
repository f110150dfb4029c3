package gateway

import (
	"context"
	"net/http"

	"booking-admission/internal/domain/inventory"
)

// AirlineGateway reads and writes airline availability documents for one
// upstream service.
type AirlineGateway struct {
	client *Client
}

func NewAirlineGateway(client *Client) *AirlineGateway {
	return &AirlineGateway{client: client}
}

func (g *AirlineGateway) Fetch(ctx context.Context, supplierID string) (*inventory.AirlineSnapshot, error) {
	var snap inventory.AirlineSnapshot
	if err := g.client.GetJSON(ctx, inventoryPath(supplierID), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (g *AirlineGateway) Write(ctx context.Context, supplierID string, snap *inventory.AirlineSnapshot) error {
	return g.client.SendJSON(ctx, http.MethodPatch, inventoryPath(supplierID), snap)
}
