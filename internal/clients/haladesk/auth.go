package haladesk

import (
	"context"
	"net/http"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

func (c *Client) Login(ctx context.Context, creds entity.Credentials) (entity.Session, error) {
	var s entity.Session

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/user/login",
		body:    creds,
		public:  true,
		failure: "Login failed",
	}, &s)

	return s, err
}

func (c *Client) Register(ctx context.Context, reg entity.Registration) (entity.Session, error) {
	var s entity.Session

	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/user/register",
		body:    reg,
		public:  true,
		failure: "Registration failed",
	}, &s)

	return s, err
}
