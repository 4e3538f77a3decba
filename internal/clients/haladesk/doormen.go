package haladesk

import (
	"context"
	"net/http"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

func (c *Client) Doormen(ctx context.Context) ([]entity.Doorman, error) {
	var ds []entity.Doorman

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    "/app/doorman",
		failure: "Failed to fetch doormen",
	}, &ds)

	return ds, err
}

func (c *Client) Doorman(ctx context.Context, id string) (entity.Doorman, error) {
	var d entity.Doorman

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    path("/app/doorman/%s", id),
		failure: "Failed to fetch doorman details",
	}, &d)

	return d, err
}

func (c *Client) RegisterDoorman(ctx context.Context, nd entity.NewDoorman) (entity.Doorman, error) {
	var d entity.Doorman

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/app/doorman/register",
		body:    nd,
		failure: "Failed to register doorman",
	}, &d)

	return d, err
}

func (c *Client) EditDoorman(ctx context.Context, id string, p entity.DoormanPatch) (entity.Doorman, error) {
	var d entity.Doorman

	err := c.do(ctx, request{
		method:  http.MethodPut,
		path:    path("/app/doorman/%s", id),
		body:    p,
		failure: "Failed to edit doorman",
	}, &d)

	return d, err
}

func (c *Client) AssignDoorman(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error) {
	var a entity.Assignment

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/app/doorman/assign",
		body:    ref,
		failure: "Failed to assign doorman",
	}, &a)

	return a, err
}

func (c *Client) RemoveDoorman(ctx context.Context, ref entity.AssignmentRef) error {
	return c.do(ctx, request{
		method:  http.MethodDelete,
		path:    "/app/doorman/remove",
		body:    ref,
		failure: "Failed to remove doorman",
	}, nil)
}

func (c *Client) BuildingDoormen(ctx context.Context, buildingID string) ([]entity.Doorman, error) {
	var ds []entity.Doorman

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    path("/app/doorman/%s/doormen", buildingID),
		failure: "Failed to fetch doormen for building",
	}, &ds)

	return ds, err
}

func (c *Client) Assignment(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error) {
	var a entity.Assignment

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    path("/app/doorman/%s/doorman/%s", ref.BuildingID, ref.UserID),
		failure: "Failed to fetch doorman assignment",
	}, &a)

	return a, err
}

func (c *Client) ActivateAssignment(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error) {
	var a entity.Assignment

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/app/doorman/assignment/activate",
		body:    ref,
		failure: "Failed to activate assignment",
	}, &a)

	return a, err
}

func (c *Client) DeactivateAssignment(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error) {
	var a entity.Assignment

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/app/doorman/assignment/deactivate",
		body:    ref,
		failure: "Failed to deactivate assignment",
	}, &a)

	return a, err
}
