package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/faridmohammadi00/entrypoint-app/internal/clients/haladesk"
	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

const errInternalText = "Internal error"

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, "api error", "error", err, "code", code)

	var text string
	if err != nil {
		text = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: text})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}

// sendDeskErr maps a desk failure to a response. Backend rejections keep
// their message; 4xx codes pass through, anything else becomes 502.
func sendDeskErr(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		fieldErr *entity.FieldError
		apiErr   *haladesk.APIError
	)

	switch {
	case errors.As(err, &apiErr):
		code := apiErr.StatusCode
		if code < http.StatusBadRequest || code >= http.StatusInternalServerError {
			code = http.StatusBadGateway
		}

		SendErr(ctx, w, code, err, apiErr.Message)
	case errors.As(err, &fieldErr), errors.Is(err, entity.ErrInvalidArgument):
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Not logged in")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}
