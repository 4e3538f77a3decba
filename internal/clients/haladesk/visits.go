package haladesk

import (
	"context"
	"net/http"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

func (c *Client) Visits(ctx context.Context) ([]entity.Visit, error) {
	var vs []entity.Visit

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    "/app/visits",
		failure: "Failed to fetch visits",
	}, &vs)

	return vs, err
}

func (c *Client) Visit(ctx context.Context, id string) (entity.Visit, error) {
	var v entity.Visit

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    path("/app/visits/%s", id),
		failure: "Failed to fetch visit",
	}, &v)

	return v, err
}

func (c *Client) CreateVisit(ctx context.Context, nv entity.NewVisit) (entity.Visit, error) {
	var v entity.Visit

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/app/visits",
		body:    nv,
		failure: "Failed to create visit",
	}, &v)

	return v, err
}

func (c *Client) UpdateVisit(ctx context.Context, id string, p entity.VisitPatch) (entity.Visit, error) {
	var v entity.Visit

	err := c.do(ctx, request{
		method:  http.MethodPut,
		path:    path("/app/visits/%s", id),
		body:    p,
		failure: "Failed to update visit",
	}, &v)

	return v, err
}
