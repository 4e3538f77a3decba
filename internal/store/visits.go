package store

import (
	"context"
	"time"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

type VisitsState struct {
	Meta
	Visits   []entity.Visit `json:"visits"`
	Selected *entity.Visit  `json:"selectedVisit"`
}

func visitID(v entity.Visit) string { return v.ID }

func (s *Store) FetchVisits(ctx context.Context) ([]entity.Visit, error) {
	return run(ctx, s, thunk[[]entity.Visit]{
		slice: sliceVisits,
		typ:   "visits/fetchVisits",
		call:  s.api.Visits,
		apply: func(vs []entity.Visit, seq uint64) {
			if s.fences[sliceVisits].replaceList(seq) {
				s.state.Visits.Visits = nonNil(vs)
			}
		},
	})
}

func (s *Store) FetchVisit(ctx context.Context, id string) (entity.Visit, error) {
	return run(ctx, s, thunk[entity.Visit]{
		slice: sliceVisits,
		typ:   "visits/fetchVisitById",
		call: func(ctx context.Context) (entity.Visit, error) {
			return s.api.Visit(ctx, id)
		},
		apply: func(v entity.Visit, seq uint64) {
			if s.fences[sliceVisits].replaceOne(seq) {
				s.state.Visits.Selected = &v
			}
		},
	})
}

func (s *Store) CreateVisit(ctx context.Context, nv entity.NewVisit) (entity.Visit, error) {
	return run(ctx, s, thunk[entity.Visit]{
		slice: sliceVisits,
		typ:   "visits/createVisit",
		call: func(ctx context.Context) (entity.Visit, error) {
			return s.api.CreateVisit(ctx, nv)
		},
		apply: func(v entity.Visit, _ uint64) {
			s.state.Visits.Visits = append(s.state.Visits.Visits, v)
		},
	})
}

func (s *Store) UpdateVisit(ctx context.Context, id string, p entity.VisitPatch) (entity.Visit, error) {
	return run(ctx, s, thunk[entity.Visit]{
		slice: sliceVisits,
		typ:   "visits/updateVisit",
		call: func(ctx context.Context) (entity.Visit, error) {
			return s.api.UpdateVisit(ctx, id, p)
		},
		apply: func(v entity.Visit, _ uint64) {
			st := &s.state.Visits
			splice(st.Visits, v, visitID)

			if st.Selected != nil && st.Selected.ID == v.ID {
				st.Selected = &v
			}
		},
	})
}

// CompleteVisit checks the visitor out at the given time.
func (s *Store) CompleteVisit(ctx context.Context, id string, at time.Time) (entity.Visit, error) {
	status := entity.VisitStatusCompleted
	out := entity.NewDate(at)

	return s.UpdateVisit(ctx, id, entity.VisitPatch{Status: &status, CheckOutDate: &out})
}
