package store

import (
	"context"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

type BuildingState struct {
	Meta
	Buildings []entity.Building `json:"buildings"`
	Selected  *entity.Building  `json:"selectedBuilding"`
}

func buildingID(b entity.Building) string { return b.ID }

func (s *Store) FetchBuildings(ctx context.Context) ([]entity.Building, error) {
	return run(ctx, s, thunk[[]entity.Building]{
		slice: sliceBuilding,
		typ:   "building/fetchBuildings",
		call:  s.api.Buildings,
		apply: func(bs []entity.Building, id uint64) {
			if s.fences[sliceBuilding].replaceList(id) {
				s.state.Building.Buildings = nonNil(bs)
			}
		},
	})
}

func (s *Store) FetchBuilding(ctx context.Context, id string) (entity.Building, error) {
	return run(ctx, s, thunk[entity.Building]{
		slice: sliceBuilding,
		typ:   "building/fetchBuildingById",
		call: func(ctx context.Context) (entity.Building, error) {
			return s.api.Building(ctx, id)
		},
		apply: func(b entity.Building, seq uint64) {
			if s.fences[sliceBuilding].replaceOne(seq) {
				s.state.Building.Selected = &b
			}
		},
	})
}

func (s *Store) CreateBuilding(ctx context.Context, nb entity.NewBuilding) (entity.Building, error) {
	return run(ctx, s, thunk[entity.Building]{
		slice: sliceBuilding,
		typ:   "building/createBuilding",
		call: func(ctx context.Context) (entity.Building, error) {
			return s.api.CreateBuilding(ctx, nb)
		},
		apply: func(b entity.Building, _ uint64) {
			s.state.Building.Buildings = append(s.state.Building.Buildings, b)
		},
	})
}

func (s *Store) UpdateBuilding(ctx context.Context, id string, p entity.BuildingPatch) (entity.Building, error) {
	return run(ctx, s, thunk[entity.Building]{
		slice: sliceBuilding,
		typ:   "building/updateBuilding",
		call: func(ctx context.Context) (entity.Building, error) {
			return s.api.UpdateBuilding(ctx, id, p)
		},
		apply: s.spliceBuilding,
	})
}

func (s *Store) DeleteBuilding(ctx context.Context, id string) error {
	_, err := run(ctx, s, thunk[string]{
		slice: sliceBuilding,
		typ:   "building/deleteBuilding",
		call: func(ctx context.Context) (string, error) {
			return id, s.api.DeleteBuilding(ctx, id)
		},
		apply: func(id string, _ uint64) {
			st := &s.state.Building
			st.Buildings = without(st.Buildings, func(b entity.Building) bool { return b.ID == id })

			if st.Selected != nil && st.Selected.ID == id {
				st.Selected = nil
			}
		},
	})

	return err
}

// ActivateBuilding is safe to repeat, activating an active building is a
// regular successful mutation.
func (s *Store) ActivateBuilding(ctx context.Context, id string) (entity.Building, error) {
	return s.setBuildingStatus(ctx, "building/activateBuilding", id, entity.StatusActive, s.api.ActivateBuilding)
}

func (s *Store) DeactivateBuilding(ctx context.Context, id string) (entity.Building, error) {
	return s.setBuildingStatus(ctx, "building/deactivateBuilding", id, entity.StatusInactive, s.api.DeactivateBuilding)
}

func (s *Store) setBuildingStatus(
	ctx context.Context,
	typ, id string,
	status entity.Status,
	call func(context.Context, string) (*entity.Building, error),
) (entity.Building, error) {
	var local entity.Building

	_, err := run(ctx, s, thunk[*entity.Building]{
		slice: sliceBuilding,
		typ:   typ,
		call: func(ctx context.Context) (*entity.Building, error) {
			return call(ctx, id)
		},
		apply: func(b *entity.Building, seq uint64) {
			if b != nil {
				local = *b
				s.spliceBuilding(local, seq)

				return
			}

			// acknowledged without a record, the local entry takes the status
			local = entity.Building{ID: id}

			for i, e := range s.state.Building.Buildings {
				if e.ID == id {
					s.state.Building.Buildings[i].Status = status
					local = s.state.Building.Buildings[i]
				}
			}

			local.Status = status

			if st := s.state.Building.Selected; st != nil && st.ID == id {
				sel := *st
				sel.Status = status
				s.state.Building.Selected = &sel
			}
		},
	})

	return local, err
}

func (s *Store) spliceBuilding(b entity.Building, _ uint64) {
	st := &s.state.Building
	splice(st.Buildings, b, buildingID)

	if st.Selected != nil && st.Selected.ID == b.ID {
		st.Selected = &b
	}
}
