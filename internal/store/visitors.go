package store

import (
	"context"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

type VisitorsState struct {
	Meta
	Visitors []entity.Visitor `json:"visitors"`
	Selected *entity.Visitor  `json:"selectedVisitor"`
}

func visitorID(v entity.Visitor) string { return v.ID }

func (s *Store) FetchVisitors(ctx context.Context) ([]entity.Visitor, error) {
	return run(ctx, s, thunk[[]entity.Visitor]{
		slice: sliceVisitors,
		typ:   "visitors/fetchVisitors",
		call:  s.api.Visitors,
		apply: func(vs []entity.Visitor, seq uint64) {
			if s.fences[sliceVisitors].replaceList(seq) {
				s.state.Visitors.Visitors = nonNil(vs)
			}
		},
	})
}

func (s *Store) FetchVisitor(ctx context.Context, id string) (entity.Visitor, error) {
	return run(ctx, s, thunk[entity.Visitor]{
		slice: sliceVisitors,
		typ:   "visitors/fetchVisitorById",
		call: func(ctx context.Context) (entity.Visitor, error) {
			return s.api.Visitor(ctx, id)
		},
		apply: func(v entity.Visitor, seq uint64) {
			if s.fences[sliceVisitors].replaceOne(seq) {
				s.state.Visitors.Selected = &v
			}
		},
	})
}

func (s *Store) CreateVisitor(ctx context.Context, nv entity.NewVisitor) (entity.Visitor, error) {
	return run(ctx, s, thunk[entity.Visitor]{
		slice: sliceVisitors,
		typ:   "visitors/createVisitor",
		call: func(ctx context.Context) (entity.Visitor, error) {
			return s.api.CreateVisitor(ctx, nv)
		},
		apply: func(v entity.Visitor, _ uint64) {
			s.state.Visitors.Visitors = append(s.state.Visitors.Visitors, v)
		},
	})
}

func (s *Store) UpdateVisitor(ctx context.Context, id string, p entity.VisitorPatch) (entity.Visitor, error) {
	return run(ctx, s, thunk[entity.Visitor]{
		slice: sliceVisitors,
		typ:   "visitors/updateVisitor",
		call: func(ctx context.Context) (entity.Visitor, error) {
			return s.api.UpdateVisitor(ctx, id, p)
		},
		apply: func(v entity.Visitor, _ uint64) {
			st := &s.state.Visitors
			splice(st.Visitors, v, visitorID)

			if st.Selected != nil && st.Selected.ID == v.ID {
				st.Selected = &v
			}
		},
	})
}

func (s *Store) DeleteVisitor(ctx context.Context, id string) error {
	_, err := run(ctx, s, thunk[string]{
		slice: sliceVisitors,
		typ:   "visitors/deleteVisitor",
		call: func(ctx context.Context) (string, error) {
			return id, s.api.DeleteVisitor(ctx, id)
		},
		apply: func(id string, _ uint64) {
			st := &s.state.Visitors
			st.Visitors = without(st.Visitors, func(v entity.Visitor) bool { return v.ID == id })

			if st.Selected != nil && st.Selected.ID == id {
				st.Selected = nil
			}
		},
	})

	return err
}
