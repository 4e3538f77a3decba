package store

import (
	"context"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

type ProfileState struct {
	Meta
	Profile *entity.Profile `json:"profile"`
}

func (s *Store) FetchProfile(ctx context.Context) (entity.Profile, error) {
	return run(ctx, s, thunk[entity.Profile]{
		slice: sliceProfile,
		typ:   "profile/fetchProfile",
		call:  s.api.Profile,
		apply: func(p entity.Profile, seq uint64) {
			if s.fences[sliceProfile].replaceOne(seq) {
				s.state.Profile.Profile = &p
			}
		},
	})
}

func (s *Store) UpdateProfile(ctx context.Context, patch entity.ProfilePatch) (entity.Profile, error) {
	return run(ctx, s, thunk[entity.Profile]{
		slice: sliceProfile,
		typ:   "profile/updateProfile",
		call: func(ctx context.Context) (entity.Profile, error) {
			return s.api.UpdateProfile(ctx, patch)
		},
		apply: func(p entity.Profile, _ uint64) {
			s.state.Profile.Profile = &p
		},
	})
}

func (s *Store) ChangePassword(ctx context.Context, pc entity.PasswordChange) error {
	_, err := run(ctx, s, thunk[struct{}]{
		slice: sliceProfile,
		typ:   "profile/changePassword",
		call: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.api.ChangePassword(ctx, pc)
		},
	})

	return err
}
