package gateway

import (
	"context"
	"net/http"
	"net/url"

	"booking-admission/internal/domain/inventory"
)

// HotelGateway reads and writes hotel availability documents for one upstream
// service. Each fetch returns a fresh snapshot; nothing is cached.
type HotelGateway struct {
	client *Client
}

func NewHotelGateway(client *Client) *HotelGateway {
	return &HotelGateway{client: client}
}

func (g *HotelGateway) Fetch(ctx context.Context, supplierID string) (*inventory.HotelSnapshot, error) {
	var snap inventory.HotelSnapshot
	if err := g.client.GetJSON(ctx, inventoryPath(supplierID), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (g *HotelGateway) Write(ctx context.Context, supplierID string, snap *inventory.HotelSnapshot) error {
	return g.client.SendJSON(ctx, http.MethodPatch, inventoryPath(supplierID), snap)
}

func inventoryPath(supplierID string) string {
	return "/suppliers/" + url.PathEscape(supplierID) + "/inventory"
}
