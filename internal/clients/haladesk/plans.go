package haladesk

import (
	"context"
	"net/http"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

func (c *Client) Plans(ctx context.Context) ([]entity.Plan, error) {
	var ps []entity.Plan

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    "/plans",
		failure: "Failed to fetch plans",
	}, &ps)

	return ps, err
}

func (c *Client) Plan(ctx context.Context, id string) (entity.Plan, error) {
	var p entity.Plan

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    path("/plans/%s", id),
		failure: "Failed to fetch plan",
	}, &p)

	return p, err
}

func (c *Client) CreateActivePlan(ctx context.Context, planID string) (entity.ActivePlan, error) {
	var ap entity.ActivePlan

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/active-plans",
		body:    entity.NewActivePlan{PlanID: planID},
		failure: "Failed to create active plan",
	}, &ap)

	return ap, err
}

func (c *Client) UserActivePlans(ctx context.Context, userID string) ([]entity.ActivePlan, error) {
	var aps []entity.ActivePlan

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    path("/active-plans/%s", userID),
		failure: "Failed to fetch active plans",
	}, &aps)

	return aps, err
}

func (c *Client) CancelActivePlan(ctx context.Context, id string) (entity.ActivePlan, error) {
	var ap entity.ActivePlan

	err := c.do(ctx, request{
		method:  http.MethodPut,
		path:    path("/active-plans/%s/cancel", id),
		failure: "Failed to cancel active plan",
	}, &ap)

	return ap, err
}
