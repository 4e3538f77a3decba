package store

import (
	"context"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

type DoormanState struct {
	Meta
	Doormen     []entity.Doorman    `json:"doormen"`
	Assignments []entity.Assignment `json:"assignments"`
	Selected    *entity.Doorman     `json:"selectedDoorman"`
}

func doormanID(d entity.Doorman) string { return d.ID }

func (s *Store) FetchDoormen(ctx context.Context) ([]entity.Doorman, error) {
	return run(ctx, s, thunk[[]entity.Doorman]{
		slice: sliceDoorman,
		typ:   "doorman/fetchDoormen",
		call:  s.api.Doormen,
		apply: s.replaceDoormen,
	})
}

// FetchDoormenForBuilding replaces the doormen list with the building's staff.
func (s *Store) FetchDoormenForBuilding(ctx context.Context, buildingID string) ([]entity.Doorman, error) {
	return run(ctx, s, thunk[[]entity.Doorman]{
		slice: sliceDoorman,
		typ:   "doorman/fetchDoormenForBuilding",
		call: func(ctx context.Context) ([]entity.Doorman, error) {
			return s.api.BuildingDoormen(ctx, buildingID)
		},
		apply: s.replaceDoormen,
	})
}

func (s *Store) replaceDoormen(ds []entity.Doorman, seq uint64) {
	if s.fences[sliceDoorman].replaceList(seq) {
		s.state.Doorman.Doormen = nonNil(ds)
	}
}

func (s *Store) FetchDoorman(ctx context.Context, id string) (entity.Doorman, error) {
	return run(ctx, s, thunk[entity.Doorman]{
		slice: sliceDoorman,
		typ:   "doorman/fetchDoormanDetails",
		call: func(ctx context.Context) (entity.Doorman, error) {
			return s.api.Doorman(ctx, id)
		},
		apply: func(d entity.Doorman, seq uint64) {
			if s.fences[sliceDoorman].replaceOne(seq) {
				s.state.Doorman.Selected = &d
			}
		},
	})
}

func (s *Store) RegisterDoorman(ctx context.Context, nd entity.NewDoorman) (entity.Doorman, error) {
	return run(ctx, s, thunk[entity.Doorman]{
		slice: sliceDoorman,
		typ:   "doorman/registerDoorman",
		call: func(ctx context.Context) (entity.Doorman, error) {
			return s.api.RegisterDoorman(ctx, nd)
		},
		apply: func(d entity.Doorman, _ uint64) {
			s.state.Doorman.Doormen = append(s.state.Doorman.Doormen, d)
		},
	})
}

func (s *Store) EditDoorman(ctx context.Context, id string, p entity.DoormanPatch) (entity.Doorman, error) {
	return run(ctx, s, thunk[entity.Doorman]{
		slice: sliceDoorman,
		typ:   "doorman/editDoorman",
		call: func(ctx context.Context) (entity.Doorman, error) {
			return s.api.EditDoorman(ctx, id, p)
		},
		apply: func(d entity.Doorman, _ uint64) {
			st := &s.state.Doorman
			splice(st.Doormen, d, doormanID)

			if st.Selected != nil && st.Selected.ID == d.ID {
				st.Selected = &d
			}
		},
	})
}

func (s *Store) AssignDoorman(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error) {
	return run(ctx, s, thunk[entity.Assignment]{
		slice: sliceDoorman,
		typ:   "doorman/assignDoorman",
		call: func(ctx context.Context) (entity.Assignment, error) {
			return s.api.AssignDoorman(ctx, ref)
		},
		apply: func(a entity.Assignment, _ uint64) {
			s.state.Doorman.Assignments = append(s.state.Doorman.Assignments, a)
		},
	})
}

// RemoveDoorman drops every local assignment of the pair.
func (s *Store) RemoveDoorman(ctx context.Context, ref entity.AssignmentRef) error {
	_, err := run(ctx, s, thunk[entity.AssignmentRef]{
		slice: sliceDoorman,
		typ:   "doorman/removeDoorman",
		call: func(ctx context.Context) (entity.AssignmentRef, error) {
			return ref, s.api.RemoveDoorman(ctx, ref)
		},
		apply: func(ref entity.AssignmentRef, _ uint64) {
			s.state.Doorman.Assignments = without(s.state.Doorman.Assignments, func(a entity.Assignment) bool {
				return a.Matches(ref.BuildingID, ref.UserID)
			})
		},
	})

	return err
}

func (s *Store) FetchAssignment(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error) {
	return s.assignmentThunk(ctx, "doorman/fetchDoormanAssignment", ref, "", s.api.Assignment)
}

func (s *Store) ActivateAssignment(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error) {
	return s.assignmentThunk(ctx, "doorman/activateAssignment", ref, entity.StatusActive, s.api.ActivateAssignment)
}

func (s *Store) DeactivateAssignment(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error) {
	return s.assignmentThunk(ctx, "doorman/deactivateAssignment", ref, entity.StatusInactive, s.api.DeactivateAssignment)
}

// assignmentThunk upserts the returned assignment. When the server answers
// without the pair, status (if set) is applied to the local entry.
func (s *Store) assignmentThunk(
	ctx context.Context,
	typ string,
	ref entity.AssignmentRef,
	status entity.Status,
	call func(context.Context, entity.AssignmentRef) (entity.Assignment, error),
) (entity.Assignment, error) {
	return run(ctx, s, thunk[entity.Assignment]{
		slice: sliceDoorman,
		typ:   typ,
		call: func(ctx context.Context) (entity.Assignment, error) {
			return call(ctx, ref)
		},
		apply: func(a entity.Assignment, _ uint64) {
			list := s.state.Doorman.Assignments

			if a.BuildingID == "" && a.UserID == "" {
				if status == "" {
					return
				}

				for i := range list {
					if list[i].Matches(ref.BuildingID, ref.UserID) {
						list[i].Status = status
					}
				}

				return
			}

			for i := range list {
				if list[i].Matches(a.BuildingID, a.UserID) {
					list[i] = a
					return
				}
			}

			s.state.Doorman.Assignments = append(list, a)
		},
	})
}

func (s *Store) ClearDoormanError() {
	s.dispatch(Action{Type: "doorman/clearError", Slice: sliceDoorman}, func(st *State) {
		st.Doorman.Error = ""
	})
}
