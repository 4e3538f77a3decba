package haladesk

import (
	"context"
	"net/http"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

func (c *Client) Buildings(ctx context.Context) ([]entity.Building, error) {
	var bs []entity.Building

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    "/app/buildings",
		failure: "Failed to fetch buildings",
	}, &bs)

	return bs, err
}

func (c *Client) Building(ctx context.Context, id string) (entity.Building, error) {
	var b entity.Building

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    path("/app/buildings/%s", id),
		failure: "Failed to fetch building",
	}, &b)

	return b, err
}

func (c *Client) CreateBuilding(ctx context.Context, nb entity.NewBuilding) (entity.Building, error) {
	var b entity.Building

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/app/buildings",
		body:    nb,
		failure: "Failed to create building",
	}, &b)

	return b, err
}

func (c *Client) UpdateBuilding(ctx context.Context, id string, p entity.BuildingPatch) (entity.Building, error) {
	var b entity.Building

	err := c.do(ctx, request{
		method:  http.MethodPut,
		path:    path("/app/buildings/%s", id),
		body:    p,
		failure: "Failed to update building",
	}, &b)

	return b, err
}

func (c *Client) DeleteBuilding(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:  http.MethodDelete,
		path:    path("/app/buildings/%s", id),
		failure: "Failed to delete building",
	}, nil)
}

// ActivateBuilding returns nil when the server acknowledges without a building.
func (c *Client) ActivateBuilding(ctx context.Context, id string) (*entity.Building, error) {
	return c.buildingStatus(ctx, path("/app/buildings/%s/activate", id), "Failed to activate building")
}

func (c *Client) DeactivateBuilding(ctx context.Context, id string) (*entity.Building, error) {
	return c.buildingStatus(ctx, path("/app/buildings/%s/deactivate", id), "Failed to deactivate building")
}

func (c *Client) buildingStatus(ctx context.Context, p, failure string) (*entity.Building, error) {
	var b entity.Building

	err := c.do(ctx, request{
		method:  http.MethodPut,
		path:    p,
		failure: failure,
	}, &b)
	if err != nil {
		return nil, err
	}

	if b.ID == "" {
		return nil, nil
	}

	return &b, nil
}
