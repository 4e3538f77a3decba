package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
	"github.com/faridmohammadi00/entrypoint-app/pkg/securestore"
)

const authKey = "persist:auth"

//go:generate go run go.uber.org/mock/mockgen@latest -source=persist.go -destination=../mocks/storage.go -package=mocks -typed

// Storage is the encrypted key-value store the auth slice is persisted to.
type Storage interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
}

// Ready is closed once Rehydrate has finished, successfully or not.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Rehydrate restores the persisted session. Failures leave the store
// unauthenticated and are only logged.
func (s *Store) Rehydrate(ctx context.Context) {
	defer s.readyOnce.Do(func() { close(s.ready) })

	if s.storage == nil {
		return
	}

	b, err := s.storage.GetItem(ctx, authKey)
	if errors.Is(err, securestore.ErrNotFound) {
		return
	}

	if err != nil {
		slog.ErrorContext(ctx, "rehydrate session", "error", err)
		return
	}

	var sess entity.Session

	err = json.Unmarshal(b, &sess)
	if err != nil {
		slog.ErrorContext(ctx, "decode persisted session", "error", err)
		return
	}

	if !sess.Authenticated() {
		return
	}

	if tokenExpired(sess.Token, time.Now()) {
		slog.InfoContext(ctx, "persisted session expired")

		err = s.storage.RemoveItem(ctx, authKey)
		if err != nil {
			slog.ErrorContext(ctx, "remove expired session", "error", err)
		}

		return
	}

	s.dispatch(Action{Type: "auth/rehydrate", Slice: sliceAuth, Phase: PhaseFulfilled, Payload: sess}, func(st *State) {
		st.Auth.Token = sess.Token
		st.Auth.User = clonePtr(sess.User)
	})
}

// tokenExpired reports whether token is a JWT whose exp lies before now.
// Opaque tokens never expire on the client.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}

	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(now)
}

// persistAuth writes the current auth state. persistMu keeps concurrent
// writers from storing an older session last.
func (s *Store) persistAuth(ctx context.Context) {
	if s.storage == nil {
		return
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	sess := entity.Session{Token: s.state.Auth.Token, User: clonePtr(s.state.Auth.User)}
	s.mu.Unlock()

	var err error

	if !sess.Authenticated() {
		err = s.storage.RemoveItem(ctx, authKey)
	} else {
		var b []byte

		b, err = json.Marshal(sess)
		if err == nil {
			err = s.storage.SetItem(ctx, authKey, b)
		}
	}

	if err != nil {
		slog.ErrorContext(ctx, "persist session", "error", err)
	}
}
