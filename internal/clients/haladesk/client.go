package haladesk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
	"github.com/faridmohammadi00/entrypoint-app/pkg/config"
	"github.com/faridmohammadi00/entrypoint-app/pkg/transport"
)

const (
	defaultRetryWaitMin = 500 * time.Millisecond
	defaultRetryWaitMax = 5 * time.Second
)

// Client talks to the HaLaDesk REST backend. The bearer token is taken
// from the call context, see entity.CtxWithJWT.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg config.API) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(retryClient.HTTPClient.Transport)
	retryClient.Logger = nil

	// HTTP responses are final, only connection level failures are retried.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    retryClient.StandardClient(),
	}
}

// APIError is a non-2xx answer of the backend. Error returns the server
// message, or the operation default when the body carried none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	switch {
	case errors.Is(target, entity.ErrNotFound):
		return e.StatusCode == http.StatusNotFound
	case errors.Is(target, entity.ErrUnauthenticated):
		return e.StatusCode == http.StatusUnauthorized
	case errors.Is(target, entity.ErrForbidden):
		return e.StatusCode == http.StatusForbidden
	default:
		return false
	}
}

// DecodeError is a 2xx answer whose body could not be decoded.
type DecodeError struct {
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type request struct {
	method  string
	path    string
	body    any
	public  bool
	failure string
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	var reader io.Reader

	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if !r.public {
		req.Header.Set("Authorization", "Bearer "+entity.JWTFromCtx(ctx))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp.StatusCode, body, r.failure)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		return &DecodeError{Message: r.failure, Err: err}
	}

	return nil
}

func newAPIError(code int, body []byte, failure string) *APIError {
	var eb errorBody

	err := json.Unmarshal(body, &eb)
	if err != nil || eb.Message == "" {
		return &APIError{StatusCode: code, Message: failure}
	}

	return &APIError{StatusCode: code, Message: eb.Message}
}

func path(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}

	return fmt.Sprintf(format, args...)
}
