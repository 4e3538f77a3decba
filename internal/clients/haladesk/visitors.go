package haladesk

import (
	"context"
	"net/http"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

func (c *Client) Visitors(ctx context.Context) ([]entity.Visitor, error) {
	var vs []entity.Visitor

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    "/app/visitors",
		failure: "Failed to fetch visitors",
	}, &vs)

	return vs, err
}

func (c *Client) Visitor(ctx context.Context, id string) (entity.Visitor, error) {
	var v entity.Visitor

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    path("/app/visitors/%s", id),
		failure: "Failed to fetch visitor",
	}, &v)

	return v, err
}

func (c *Client) CreateVisitor(ctx context.Context, nv entity.NewVisitor) (entity.Visitor, error) {
	var v entity.Visitor

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/app/visitors",
		body:    nv,
		failure: "Failed to create visitor",
	}, &v)

	return v, err
}

func (c *Client) UpdateVisitor(ctx context.Context, id string, p entity.VisitorPatch) (entity.Visitor, error) {
	var v entity.Visitor

	err := c.do(ctx, request{
		method:  http.MethodPut,
		path:    path("/app/visitors/%s", id),
		body:    p,
		failure: "Failed to update visitor",
	}, &v)

	return v, err
}

func (c *Client) DeleteVisitor(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:  http.MethodDelete,
		path:    path("/app/visitors/%s", id),
		failure: "Failed to delete visitor",
	}, nil)
}
