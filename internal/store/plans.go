package store

import (
	"context"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

type PlansState struct {
	Meta
	Plans    []entity.Plan `json:"plans"`
	Selected *entity.Plan  `json:"selectedPlan"`
}

func (s *Store) FetchPlans(ctx context.Context) ([]entity.Plan, error) {
	return run(ctx, s, thunk[[]entity.Plan]{
		slice: slicePlans,
		typ:   "plans/fetchPlans",
		call:  s.api.Plans,
		apply: func(ps []entity.Plan, id uint64) {
			if s.fences[slicePlans].replaceList(id) {
				s.state.Plans.Plans = nonNil(ps)
			}
		},
	})
}

func (s *Store) FetchPlan(ctx context.Context, planID string) (entity.Plan, error) {
	return run(ctx, s, thunk[entity.Plan]{
		slice: slicePlans,
		typ:   "plans/fetchPlanById",
		call: func(ctx context.Context) (entity.Plan, error) {
			return s.api.Plan(ctx, planID)
		},
		apply: func(p entity.Plan, id uint64) {
			if s.fences[slicePlans].replaceOne(id) {
				s.state.Plans.Selected = &p
			}
		},
	})
}

func (s *Store) ClearSelectedPlan() {
	s.dispatch(Action{Type: "plans/clearSelectedPlan", Slice: slicePlans}, func(st *State) {
		st.Plans.Selected = nil
	})
}

type ActivePlansState struct {
	Meta
	ActivePlans []entity.ActivePlan `json:"activePlans"`
}

func activePlanID(ap entity.ActivePlan) string { return ap.ID }

func (s *Store) CreateActivePlan(ctx context.Context, planID string) (entity.ActivePlan, error) {
	return run(ctx, s, thunk[entity.ActivePlan]{
		slice: sliceActivePlans,
		typ:   "activePlans/create",
		call: func(ctx context.Context) (entity.ActivePlan, error) {
			return s.api.CreateActivePlan(ctx, planID)
		},
		apply: func(ap entity.ActivePlan, _ uint64) {
			s.state.ActivePlans.ActivePlans = append(s.state.ActivePlans.ActivePlans, ap)
		},
	})
}

func (s *Store) FetchUserActivePlans(ctx context.Context, userID string) ([]entity.ActivePlan, error) {
	return run(ctx, s, thunk[[]entity.ActivePlan]{
		slice: sliceActivePlans,
		typ:   "activePlans/fetchUserPlans",
		call: func(ctx context.Context) ([]entity.ActivePlan, error) {
			return s.api.UserActivePlans(ctx, userID)
		},
		apply: func(aps []entity.ActivePlan, id uint64) {
			if s.fences[sliceActivePlans].replaceList(id) {
				s.state.ActivePlans.ActivePlans = nonNil(aps)
			}
		},
	})
}

// CancelActivePlan marks the local entry cancelled when the server answers
// without the updated record.
func (s *Store) CancelActivePlan(ctx context.Context, id string) (entity.ActivePlan, error) {
	return run(ctx, s, thunk[entity.ActivePlan]{
		slice: sliceActivePlans,
		typ:   "activePlans/cancel",
		call: func(ctx context.Context) (entity.ActivePlan, error) {
			return s.api.CancelActivePlan(ctx, id)
		},
		apply: func(ap entity.ActivePlan, _ uint64) {
			list := s.state.ActivePlans.ActivePlans

			if ap.ID != "" {
				splice(list, ap, activePlanID)
				return
			}

			for i := range list {
				if list[i].ID == id {
					list[i].Status = entity.ActivePlanStatusCancelled
				}
			}
		},
	})
}

func (s *Store) ClearActivePlans() {
	s.dispatch(Action{Type: "activePlans/clearActivePlans", Slice: sliceActivePlans}, func(st *State) {
		st.ActivePlans.ActivePlans = []entity.ActivePlan{}
		st.ActivePlans.Error = ""
	})
}
