package store_test

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

// slowFirst answers the first request only after release is closed.
func slowFirst(first, rest http.HandlerFunc) (http.HandlerFunc, chan struct{}, chan struct{}) {
	var hits atomic.Int32

	started := make(chan struct{})
	release := make(chan struct{})

	return func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
			<-release
			first(w, r)

			return
		}

		rest(w, r)
	}, started, release
}

func TestStore_StaleFetchDoesNotReplaceList(t *testing.T) {
	t.Parallel()

	h, started, release := slowFirst(
		reply(http.StatusOK, `[{"_id":"old"}]`),
		reply(http.StatusOK, `[{"_id":"new"}]`),
	)

	r := chi.NewRouter()
	r.Get("/app/buildings", h)

	s := newStore(t, r, nil)
	ctx := context.Background()

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		_, _ = s.FetchBuildings(ctx)
	}()

	<-started

	_, err := s.FetchBuildings(ctx)
	require.NoError(t, err)

	st := s.Snapshot().Building
	require.Equal(t, "new", st.Buildings[0].ID)
	require.True(t, st.Loading, "first request is still in flight")

	close(release)
	wg.Wait()

	st = s.Snapshot().Building
	require.Len(t, st.Buildings, 1)
	require.Equal(t, "new", st.Buildings[0].ID)
	require.False(t, st.Loading)
}

func TestStore_StaleErrorDoesNotOverwrite(t *testing.T) {
	t.Parallel()

	h, started, release := slowFirst(
		reply(http.StatusInternalServerError, `{"message":"stale failure"}`),
		reply(http.StatusOK, `[]`),
	)

	r := chi.NewRouter()
	r.Get("/app/visitors", h)

	s := newStore(t, r, nil)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		firstErr error
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		_, firstErr = s.FetchVisitors(ctx)
	}()

	<-started

	_, err := s.FetchVisitors(ctx)
	require.NoError(t, err)

	close(release)
	wg.Wait()

	require.EqualError(t, firstErr, "stale failure")

	st := s.Snapshot().Visitors
	require.Empty(t, st.Error)
	require.False(t, st.Loading)
}

func TestStore_IncrementalEffectsAlwaysApply(t *testing.T) {
	t.Parallel()

	h, started, release := slowFirst(
		reply(http.StatusCreated, `{"_id":"v1"}`),
		reply(http.StatusCreated, `{"_id":"v2"}`),
	)

	r := chi.NewRouter()
	r.Post("/app/visits", h)

	s := newStore(t, r, nil)
	ctx := context.Background()

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		_, _ = s.CreateVisit(ctx, newVisit())
	}()

	<-started

	_, err := s.CreateVisit(ctx, newVisit())
	require.NoError(t, err)

	close(release)
	wg.Wait()

	vs := s.Snapshot().Visits.Visits
	require.Len(t, vs, 2)
	require.Equal(t, "v2", vs[0].ID)
	require.Equal(t, "v1", vs[1].ID)
}

func newVisit() entity.NewVisit {
	return entity.NewVisit{
		BuildingID:  "b1",
		VisitorID:   "vi1",
		Purpose:     "delivery",
		CheckInDate: entity.NewDate(time.Now()),
		Status:      entity.VisitStatusPending,
	}
}
