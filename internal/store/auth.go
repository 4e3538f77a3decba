package store

import (
	"context"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

type AuthState struct {
	Meta
	Token string       `json:"-"`
	User  *entity.User `json:"user"`
}

func (a AuthState) Authenticated() bool {
	return a.Token != ""
}

func (s *Store) Login(ctx context.Context, creds entity.Credentials) (entity.Session, error) {
	sess, err := run(ctx, s, thunk[entity.Session]{
		slice:  sliceAuth,
		typ:    "auth/login",
		public: true,
		call: func(ctx context.Context) (entity.Session, error) {
			return s.api.Login(ctx, creds)
		},
		apply: s.applySession,
	})
	if err != nil {
		return sess, err
	}

	s.persistAuth(ctx)

	return sess, nil
}

// Register creates an account. The current session is left untouched; the
// new user logs in separately.
func (s *Store) Register(ctx context.Context, reg entity.Registration) (entity.Session, error) {
	return run(ctx, s, thunk[entity.Session]{
		slice:  sliceAuth,
		typ:    "auth/register",
		public: true,
		call: func(ctx context.Context) (entity.Session, error) {
			return s.api.Register(ctx, reg)
		},
	})
}

func (s *Store) applySession(sess entity.Session, _ uint64) {
	s.state.Auth.Token = sess.Token
	s.state.Auth.User = clonePtr(sess.User)
}

func (s *Store) Logout(ctx context.Context) {
	s.dispatch(Action{Type: "auth/logout", Slice: sliceAuth}, func(st *State) {
		st.Auth = AuthState{}
	})

	s.persistAuth(ctx)
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Auth.Token
}

// CurrentUser returns the logged in user, if any.
func (s *Store) CurrentUser() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clonePtr(s.state.Auth.User)
}
