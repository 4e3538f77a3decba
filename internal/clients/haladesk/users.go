package haladesk

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

// Users lists admin accounts. A payload that is not an array yields an empty list.
func (c *Client) Users(ctx context.Context) ([]entity.AdminUser, error) {
	var raw json.RawMessage

	err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    "/admin/users",
		failure: "Failed to fetch users",
	}, &raw)
	if err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return []entity.AdminUser{}, nil
	}

	users := []entity.AdminUser{}

	err = json.Unmarshal(raw, &users)
	if err != nil {
		return nil, &DecodeError{Message: "Failed to fetch users", Err: err}
	}

	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, nu entity.NewUser) (entity.AdminUser, error) {
	var u entity.AdminUser

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/admin/users",
		body:    nu,
		failure: "Failed to create user",
	}, &u)

	return u, err
}

func (c *Client) UpdateUser(ctx context.Context, id string, p entity.UserPatch) (entity.AdminUser, error) {
	var u entity.AdminUser

	err := c.do(ctx, request{
		method:  http.MethodPut,
		path:    path("/admin/users/%s", id),
		body:    p,
		failure: "Failed to update user",
	}, &u)

	return u, err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:  http.MethodDelete,
		path:    path("/admin/users/%s", id),
		failure: "Failed to delete user",
	}, nil)
}

func (c *Client) ActivateUser(ctx context.Context, id string) (entity.AdminUser, error) {
	var u entity.AdminUser

	err := c.do(ctx, request{
		method:  http.MethodPut,
		path:    path("/admin/users/%s/activate", id),
		failure: "Failed to activate user",
	}, &u)

	return u, err
}

func (c *Client) InactivateUser(ctx context.Context, id string) (entity.AdminUser, error) {
	var u entity.AdminUser

	err := c.do(ctx, request{
		method:  http.MethodPut,
		path:    path("/admin/users/%s/inactivate", id),
		failure: "Failed to deactivate user",
	}, &u)

	return u, err
}
