package haladesk

import (
	"context"
	"net/http"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

func (c *Client) Profile(ctx context.Context) (entity.Profile, error) {
	var p entity.Profile

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    "/profile",
		failure: "Failed to fetch profile",
	}, &p)

	return p, err
}

func (c *Client) UpdateProfile(ctx context.Context, patch entity.ProfilePatch) (entity.Profile, error) {
	var p entity.Profile

	err := c.do(ctx, request{
		method:  http.MethodPut,
		path:    "/profile",
		body:    patch,
		failure: "Failed to update profile",
	}, &p)

	return p, err
}

func (c *Client) ChangePassword(ctx context.Context, pc entity.PasswordChange) error {
	return c.do(ctx, request{
		method:  http.MethodPut,
		path:    "/profile/change-password",
		body:    pc,
		failure: "Failed to change password",
	}, nil)
}
