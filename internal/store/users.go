package store

import (
	"context"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

type UsersState struct {
	Meta
	Users []entity.AdminUser `json:"users"`
}

func userID(u entity.AdminUser) string { return u.ID }

func (s *Store) FetchUsers(ctx context.Context) ([]entity.AdminUser, error) {
	return run(ctx, s, thunk[[]entity.AdminUser]{
		slice: sliceUsers,
		typ:   "users/fetchUsers",
		call:  s.api.Users,
		apply: func(us []entity.AdminUser, id uint64) {
			if s.fences[sliceUsers].replaceList(id) {
				s.state.Users.Users = nonNil(us)
			}
		},
	})
}

func (s *Store) CreateUser(ctx context.Context, nu entity.NewUser) (entity.AdminUser, error) {
	return run(ctx, s, thunk[entity.AdminUser]{
		slice: sliceUsers,
		typ:   "users/createUser",
		call: func(ctx context.Context) (entity.AdminUser, error) {
			return s.api.CreateUser(ctx, nu)
		},
		apply: func(u entity.AdminUser, _ uint64) {
			s.state.Users.Users = append(s.state.Users.Users, u)
		},
	})
}

func (s *Store) UpdateUser(ctx context.Context, id string, p entity.UserPatch) (entity.AdminUser, error) {
	return run(ctx, s, thunk[entity.AdminUser]{
		slice: sliceUsers,
		typ:   "users/updateUser",
		call: func(ctx context.Context) (entity.AdminUser, error) {
			return s.api.UpdateUser(ctx, id, p)
		},
		apply: func(u entity.AdminUser, _ uint64) {
			splice(s.state.Users.Users, u, userID)
		},
	})
}

// UpdateUserStatus activates the account for StatusActive and inactivates it
// for anything else.
func (s *Store) UpdateUserStatus(ctx context.Context, id string, status entity.Status) (entity.AdminUser, error) {
	return run(ctx, s, thunk[entity.AdminUser]{
		slice: sliceUsers,
		typ:   "users/updateUserStatus",
		call: func(ctx context.Context) (entity.AdminUser, error) {
			if status == entity.StatusActive {
				return s.api.ActivateUser(ctx, id)
			}

			return s.api.InactivateUser(ctx, id)
		},
		apply: func(u entity.AdminUser, _ uint64) {
			splice(s.state.Users.Users, u, userID)
		},
	})
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	_, err := run(ctx, s, thunk[string]{
		slice: sliceUsers,
		typ:   "users/deleteUser",
		call: func(ctx context.Context) (string, error) {
			return id, s.api.DeleteUser(ctx, id)
		},
		apply: func(id string, _ uint64) {
			s.state.Users.Users = without(s.state.Users.Users, func(u entity.AdminUser) bool { return u.ID == id })
		},
	})

	return err
}
