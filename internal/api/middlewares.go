package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/faridmohammadi00/entrypoint-app/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health":  {},
	"/api/metrics": {},
}

// Bodies of these requests carry credentials.
var skipBody = map[string]struct{}{
	"/api/login": {},
}

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			var reqBody []byte

			if _, ok := skipBody[r.URL.Path]; !ok {
				var err error

				reqBody, err = io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
				if err != nil {
					var tooLarge *http.MaxBytesError
					if errors.As(err, &tooLarge) {
						SendErr(ctx, w, http.StatusRequestEntityTooLarge, err, "request body too large")
						return
					}

					SendErr(ctx, w, http.StatusInternalServerError, err, "read request body")
					return
				}

				r.Body.Close()
				r.Body = io.NopCloser(bytes.NewBuffer(reqBody))
			}

			var headers strings.Builder

			for k, v := range r.Header {
				if k == "Authorization" || k == "Cookie" {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
				"headers", headers.String(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), errInternalText)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
