package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/faridmohammadi00/entrypoint-app/internal/clients/haladesk"
	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
	"github.com/faridmohammadi00/entrypoint-app/internal/mocks"
	"github.com/faridmohammadi00/entrypoint-app/internal/store"
	"github.com/faridmohammadi00/entrypoint-app/pkg/config"
)

var _ store.API = (*haladesk.Client)(nil)

// newStore wires a store to a fake backend. Storage is nil unless given.
func newStore(t *testing.T, r chi.Router, storage store.Storage) *store.Store {
	t.Helper()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return store.New(haladesk.New(config.API{BaseURL: srv.URL}), storage)
}

func reply(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}
}

func TestStore_Login(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)

	r := chi.NewRouter()
	r.Post("/user/login", func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		reply(http.StatusOK, `{"token":"T","user":{"id":"u1","email":"a@b.co","fullName":"A"}}`)(w, r)
	})
	r.Get("/app/buildings", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		reply(http.StatusOK, `[]`)(w, r)
	})

	storage.EXPECT().SetItem(gomock.Any(), "persist:auth", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, b []byte) error {
			var sess entity.Session
			require.NoError(t, json.Unmarshal(b, &sess))
			require.Equal(t, "T", sess.Token)
			require.Equal(t, "u1", sess.User.ID)

			return nil
		})

	s := newStore(t, r, storage)

	sess, err := s.Login(context.Background(), entity.Credentials{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "T", sess.Token)

	st := s.Snapshot()
	require.Equal(t, "T", st.Auth.Token)
	require.Equal(t, "u1", st.Auth.User.ID)
	require.False(t, st.Auth.Loading)
	require.Empty(t, st.Auth.Error)

	_, err = s.FetchBuildings(context.Background())
	require.NoError(t, err)
}

func TestStore_Login_Rejected(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Post("/user/login", reply(http.StatusUnauthorized, `{"message":"Invalid credentials"}`))

	s := newStore(t, r, nil)

	_, err := s.Login(context.Background(), entity.Credentials{Email: "a@b.co", Password: "wrong1"})
	require.ErrorIs(t, err, entity.ErrUnauthenticated)

	st := s.Snapshot()
	require.False(t, st.Auth.Authenticated())
	require.Equal(t, "Invalid credentials", st.Auth.Error)
}

func TestStore_Login_PersistFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().SetItem(gomock.Any(), "persist:auth", gomock.Any()).Return(context.DeadlineExceeded)

	r := chi.NewRouter()
	r.Post("/user/login", reply(http.StatusOK, `{"token":"T","user":{"id":"u1"}}`))

	s := newStore(t, r, storage)

	_, err := s.Login(context.Background(), entity.Credentials{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "T", s.Token())
}

func TestStore_Register(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().SetItem(gomock.Any(), "persist:auth", gomock.Any()).Return(nil).Times(1)

	r := chi.NewRouter()
	r.Post("/user/login", reply(http.StatusOK, `{"token":"T","user":{"id":"u1"}}`))
	r.Post("/user/register", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)

		if in["email"] == "taken@b.co" {
			reply(http.StatusConflict, `{"message":"X"}`)(w, r)
			return
		}

		reply(http.StatusCreated, `{"message":"User registered","user":{"id":"u2"}}`)(w, r)
	})

	s := newStore(t, r, storage)

	_, err := s.Login(context.Background(), entity.Credentials{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)

	reg := entity.Registration{Email: "new@b.co", FullName: "N", IDNumber: "1", Phone: "2", Password: "secret1"}

	sess, err := s.Register(context.Background(), reg)
	require.NoError(t, err)
	require.Equal(t, "u2", sess.User.ID)

	st := s.Snapshot()
	require.False(t, st.Auth.Loading)
	require.Empty(t, st.Auth.Error)
	require.Equal(t, "T", s.Token())
	require.Equal(t, "u1", st.Auth.User.ID)

	reg.Email = "taken@b.co"

	_, err = s.Register(context.Background(), reg)
	require.Error(t, err)

	st = s.Snapshot()
	require.False(t, st.Auth.Loading)
	require.Equal(t, "X", st.Auth.Error)
	require.Equal(t, "T", s.Token())
}

func TestStore_Logout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)

	gomock.InOrder(
		storage.EXPECT().SetItem(gomock.Any(), "persist:auth", gomock.Any()).Return(nil),
		storage.EXPECT().RemoveItem(gomock.Any(), "persist:auth").Return(nil),
	)

	r := chi.NewRouter()
	r.Post("/user/login", reply(http.StatusOK, `{"token":"T","user":{"id":"u1"}}`))

	s := newStore(t, r, storage)

	_, err := s.Login(context.Background(), entity.Credentials{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)

	s.Logout(context.Background())

	st := s.Snapshot()
	require.Empty(t, st.Auth.Token)
	require.Nil(t, st.Auth.User)
	require.Nil(t, s.CurrentUser())
}

func TestStore_FetchBuildings_Empty(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/buildings", reply(http.StatusOK, `[]`))

	s := newStore(t, r, nil)

	_, err := s.FetchBuildings(context.Background())
	require.NoError(t, err)

	st := s.Snapshot().Building
	require.NotNil(t, st.Buildings)
	require.Empty(t, st.Buildings)
	require.False(t, st.Loading)
	require.Empty(t, st.Error)
}

func TestStore_CreateBuilding_AppendsOnce(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/buildings", reply(http.StatusOK, `[{"_id":"b1","name":"A"}]`))
	r.Post("/app/buildings", reply(http.StatusCreated, `{"_id":"b2","name":"B","type":"complex","status":"active"}`))

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchBuildings(ctx)
	require.NoError(t, err)

	b, err := s.CreateBuilding(ctx, entity.NewBuilding{Name: "B", Type: entity.BuildingTypeComplex})
	require.NoError(t, err)
	require.Equal(t, "b2", b.ID)

	st := s.Snapshot().Building
	require.Len(t, st.Buildings, 2)
	require.Equal(t, "b2", st.Buildings[1].ID)
	require.False(t, st.Loading)
}

func TestStore_ErrorMessages(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		code int
		body string
		want string
	}{
		{name: "server message", code: http.StatusBadRequest, body: `{"message":"X"}`, want: "X"},
		{name: "empty body", code: http.StatusInternalServerError, want: "Failed to fetch buildings"},
		{name: "not json", code: http.StatusBadGateway, body: `oops`, want: "Failed to fetch buildings"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := chi.NewRouter()
			r.Get("/app/buildings", reply(tt.code, tt.body))

			s := newStore(t, r, nil)

			_, err := s.FetchBuildings(context.Background())
			require.EqualError(t, err, tt.want)

			st := s.Snapshot().Building
			require.Equal(t, tt.want, st.Error)
			require.False(t, st.Loading)
		})
	}
}

func TestStore_TransportErrorText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	s := store.New(haladesk.New(config.API{BaseURL: srv.URL}), nil)

	_, err := s.FetchVisitors(context.Background())
	require.Error(t, err)
	require.Equal(t, err.Error(), s.Snapshot().Visitors.Error)
}

func TestStore_ActivateBuilding_Twice(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/buildings", reply(http.StatusOK, `[{"_id":"b1","status":"active"}]`))
	r.Put("/app/buildings/{id}/activate", reply(http.StatusOK, `{"_id":"b1","status":"active"}`))

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchBuildings(ctx)
	require.NoError(t, err)

	for range 2 {
		b, err := s.ActivateBuilding(ctx, "b1")
		require.NoError(t, err)
		require.Equal(t, entity.StatusActive, b.Status)
	}

	st := s.Snapshot().Building
	require.Len(t, st.Buildings, 1)
	require.Equal(t, entity.StatusActive, st.Buildings[0].Status)
	require.Empty(t, st.Error)
}

func TestStore_DeactivateBuilding_WithoutRecord(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/buildings", reply(http.StatusOK, `[{"_id":"b1","name":"A","status":"active"}]`))
	r.Put("/app/buildings/{id}/deactivate", reply(http.StatusOK, `{"message":"Building deactivated"}`))

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchBuildings(ctx)
	require.NoError(t, err)

	b, err := s.DeactivateBuilding(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, "A", b.Name)
	require.Equal(t, entity.StatusInactive, b.Status)

	st := s.Snapshot().Building
	require.Equal(t, entity.StatusInactive, st.Buildings[0].Status)
}

func TestStore_DeleteBuilding(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/buildings", reply(http.StatusOK, `[{"_id":"b1"},{"_id":"b2"}]`))
	r.Get("/app/buildings/{id}", reply(http.StatusOK, `{"_id":"b1"}`))
	r.Delete("/app/buildings/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "b1", chi.URLParam(r, "id"))
		reply(http.StatusOK, `{"message":"deleted"}`)(w, r)
	})

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchBuildings(ctx)
	require.NoError(t, err)

	_, err = s.FetchBuilding(ctx, "b1")
	require.NoError(t, err)

	require.NoError(t, s.DeleteBuilding(ctx, "b1"))

	st := s.Snapshot().Building
	require.Len(t, st.Buildings, 1)
	require.Equal(t, "b2", st.Buildings[0].ID)
	require.Nil(t, st.Selected)
}

func TestStore_UpdateBuilding_RefreshesSelected(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/buildings", reply(http.StatusOK, `[{"_id":"b1","name":"Old"}]`))
	r.Get("/app/buildings/{id}", reply(http.StatusOK, `{"_id":"b1","name":"Old"}`))
	r.Put("/app/buildings/{id}", reply(http.StatusOK, `{"_id":"b1","name":"New"}`))

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchBuildings(ctx)
	require.NoError(t, err)

	_, err = s.FetchBuilding(ctx, "b1")
	require.NoError(t, err)

	name := "New"
	_, err = s.UpdateBuilding(ctx, "b1", entity.BuildingPatch{Name: &name})
	require.NoError(t, err)

	st := s.Snapshot().Building
	require.Equal(t, "New", st.Buildings[0].Name)
	require.Equal(t, "New", st.Selected.Name)
}

func TestStore_UpdateVisit_Completed(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/visits", reply(http.StatusOK, `[{"_id":"v1","status":"pending"},{"_id":"v2","status":"pending"}]`))
	r.Put("/app/visits/{id}", func(w http.ResponseWriter, r *http.Request) {
		var p map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		require.Equal(t, "completed", p["status"])
		require.Contains(t, p, "check_out_date")

		reply(http.StatusOK, `{"_id":"v1","status":"completed","check_out_date":"2024-03-01T12:00:00Z"}`)(w, r)
	})

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchVisits(ctx)
	require.NoError(t, err)

	_, err = s.CompleteVisit(ctx, "v1", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	st := s.Snapshot().Visits
	require.Equal(t, entity.VisitStatusCompleted, st.Visits[0].Status)
	require.NotNil(t, st.Visits[0].CheckOutDate)
	require.Equal(t, entity.VisitStatusPending, st.Visits[1].Status)
}

func TestStore_FetchUsers_ServerError(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		fail bool
	)

	r := chi.NewRouter()
	r.Get("/admin/users", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		if fail {
			reply(http.StatusInternalServerError, `{"message":"Server error"}`)(w, r)
			return
		}

		reply(http.StatusOK, `[{"_id":"u1","fullName":"A","status":"Active"}]`)(w, r)
	})

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchUsers(ctx)
	require.NoError(t, err)

	mu.Lock()
	fail = true
	mu.Unlock()

	_, err = s.FetchUsers(ctx)
	require.EqualError(t, err, "Server error")

	st := s.Snapshot().Users
	require.Len(t, st.Users, 1)
	require.Equal(t, "u1", st.Users[0].ID)
	require.Equal(t, "Server error", st.Error)
	require.False(t, st.Loading)
}

func TestStore_FetchUsers_NonArray(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/admin/users", reply(http.StatusOK, `{"message":"no users"}`))

	s := newStore(t, r, nil)

	_, err := s.FetchUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, s.Snapshot().Users.Users)
}

func TestStore_UserLifecycle(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/admin/users", reply(http.StatusOK, `[{"_id":"u1","status":"Active"}]`))
	r.Post("/admin/users", reply(http.StatusCreated, `{"_id":"u2","status":"Active"}`))
	r.Put("/admin/users/{id}/inactivate", reply(http.StatusOK, `{"_id":"u1","status":"Not Active"}`))
	r.Put("/admin/users/{id}/activate", reply(http.StatusOK, `{"_id":"u1","status":"Active"}`))
	r.Put("/admin/users/{id}", reply(http.StatusOK, `{"_id":"u2","fullName":"Renamed","status":"Active"}`))
	r.Delete("/admin/users/{id}", reply(http.StatusOK, `{}`))

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchUsers(ctx)
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, entity.NewUser{FullName: "B", Email: "b@c.de", Password: "secret1"})
	require.NoError(t, err)

	_, err = s.UpdateUserStatus(ctx, "u1", entity.StatusInactive)
	require.NoError(t, err)
	require.Equal(t, "Not Active", s.Snapshot().Users.Users[0].Status)

	_, err = s.UpdateUserStatus(ctx, "u1", entity.StatusActive)
	require.NoError(t, err)
	require.Equal(t, "Active", s.Snapshot().Users.Users[0].Status)

	renamed := "Renamed"
	_, err = s.UpdateUser(ctx, "u2", entity.UserPatch{FullName: &renamed})
	require.NoError(t, err)
	require.Equal(t, "Renamed", s.Snapshot().Users.Users[1].FullName)

	require.NoError(t, s.DeleteUser(ctx, "u1"))

	users := s.Snapshot().Users.Users
	require.Len(t, users, 1)
	require.Equal(t, "u2", users[0].ID)
}

func TestStore_Doorman(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/doorman", reply(http.StatusOK, `[{"_id":"d1","fullname":"Omar","status":"active"}]`))
	r.Post("/app/doorman/register", reply(http.StatusCreated, `{"_id":"d2","fullname":"Ali","status":"active"}`))
	r.Put("/app/doorman/{id}", reply(http.StatusOK, `{"_id":"d2","fullname":"Ali K","status":"active"}`))
	r.Post("/app/doorman/assign", reply(http.StatusOK, `{"buildingId":"b1","userId":"d1","status":"active","assignedAt":"2024-01-02"}`))
	r.Post("/app/doorman/assignment/deactivate", reply(http.StatusOK, `{"buildingId":"b1","userId":"d1","status":"inactive","assignedAt":"2024-01-02"}`))
	r.Post("/app/doorman/assignment/activate", reply(http.StatusOK, `{"message":"activated"}`))
	r.Delete("/app/doorman/remove", reply(http.StatusOK, `{"message":"removed"}`))
	r.Get("/app/doorman/{buildingId}/doormen", reply(http.StatusOK, `[{"_id":"d1"}]`))
	r.Get("/app/doorman/{buildingId}/doorman/{userId}", reply(http.StatusNotFound, `{"message":"Assignment not found"}`))

	s := newStore(t, r, nil)
	ctx := context.Background()
	ref := entity.AssignmentRef{BuildingID: "b1", UserID: "d1"}

	_, err := s.FetchDoormen(ctx)
	require.NoError(t, err)

	_, err = s.RegisterDoorman(ctx, entity.NewDoorman{FullName: "Ali", Email: "ali@x.io", Password: "secret1"})
	require.NoError(t, err)

	fullName := "Ali K"
	_, err = s.EditDoorman(ctx, "d2", entity.DoormanPatch{FullName: &fullName})
	require.NoError(t, err)
	require.Equal(t, "Ali K", s.Snapshot().Doorman.Doormen[1].FullName)

	_, err = s.AssignDoorman(ctx, ref)
	require.NoError(t, err)

	_, err = s.DeactivateAssignment(ctx, ref)
	require.NoError(t, err)

	st := s.Snapshot().Doorman
	require.Len(t, st.Assignments, 1)
	require.Equal(t, entity.StatusInactive, st.Assignments[0].Status)

	_, err = s.ActivateAssignment(ctx, ref)
	require.NoError(t, err)
	require.Equal(t, entity.StatusActive, s.Snapshot().Doorman.Assignments[0].Status)

	_, err = s.FetchAssignment(ctx, ref)
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.Equal(t, "Assignment not found", s.Snapshot().Doorman.Error)

	s.ClearDoormanError()
	require.Empty(t, s.Snapshot().Doorman.Error)

	require.NoError(t, s.RemoveDoorman(ctx, ref))
	require.Empty(t, s.Snapshot().Doorman.Assignments)

	_, err = s.FetchDoormenForBuilding(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, s.Snapshot().Doorman.Doormen, 1)
}

func TestStore_Plans(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/plans", reply(http.StatusOK, `[{"_id":"p1","planName":"Basic","price":10}]`))
	r.Get("/plans/{id}", reply(http.StatusOK, `{"_id":"p1","planName":"Basic","price":10}`))
	r.Post("/active-plans", reply(http.StatusCreated, `{"_id":"ap1","userId":"u1","planId":"p1","status":"pending"}`))
	r.Get("/active-plans/{userId}", reply(http.StatusOK, `[{"_id":"ap1","userId":"u1","planId":{"_id":"p1","planName":"Basic"},"status":"active"}]`))
	r.Put("/active-plans/{id}/cancel", reply(http.StatusOK, `{}`))

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchPlans(ctx)
	require.NoError(t, err)

	_, err = s.FetchPlan(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Basic", s.Snapshot().Plans.Selected.PlanName)

	s.ClearSelectedPlan()
	require.Nil(t, s.Snapshot().Plans.Selected)

	_, err = s.CreateActivePlan(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, s.Snapshot().ActivePlans.ActivePlans, 1)

	_, err = s.FetchUserActivePlans(ctx, "u1")
	require.NoError(t, err)

	aps := s.Snapshot().ActivePlans.ActivePlans
	require.Len(t, aps, 1)
	require.Equal(t, "Basic", aps[0].PlanID.Plan.PlanName)

	_, err = s.CancelActivePlan(ctx, "ap1")
	require.NoError(t, err)
	require.Equal(t, entity.ActivePlanStatusCancelled, s.Snapshot().ActivePlans.ActivePlans[0].Status)

	s.ClearActivePlans()
	require.Empty(t, s.Snapshot().ActivePlans.ActivePlans)
}

func TestStore_VisitorsAndProfile(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/visitors", reply(http.StatusOK, `[{"_id":"vi1","fullname":"Sara","gender":"female"}]`))
	r.Post("/app/visitors", reply(http.StatusCreated, `{"_id":"vi2","fullname":"Noor"}`))
	r.Put("/app/visitors/{id}", reply(http.StatusOK, `{"_id":"vi2","fullname":"Noor A"}`))
	r.Delete("/app/visitors/{id}", reply(http.StatusOK, `{}`))
	r.Get("/profile", reply(http.StatusOK, `{"_id":"u1","fullname":"A"}`))
	r.Put("/profile", reply(http.StatusOK, `{"_id":"u1","fullname":"B"}`))
	r.Put("/profile/change-password", reply(http.StatusBadRequest, ``))

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchVisitors(ctx)
	require.NoError(t, err)

	_, err = s.CreateVisitor(ctx, entity.NewVisitor{FullName: "Noor", Gender: entity.GenderFemale, Status: entity.StatusActive})
	require.NoError(t, err)

	fullName := "Noor A"
	_, err = s.UpdateVisitor(ctx, "vi2", entity.VisitorPatch{FullName: &fullName})
	require.NoError(t, err)

	require.NoError(t, s.DeleteVisitor(ctx, "vi1"))

	vs := s.Snapshot().Visitors.Visitors
	require.Len(t, vs, 1)
	require.Equal(t, "Noor A", vs[0].FullName)

	_, err = s.FetchProfile(ctx)
	require.NoError(t, err)

	other := "B"
	_, err = s.UpdateProfile(ctx, entity.ProfilePatch{FullName: &other})
	require.NoError(t, err)
	require.Equal(t, "B", s.Snapshot().Profile.Profile.FullName)

	err = s.ChangePassword(ctx, entity.PasswordChange{CurrentPassword: "old123", NewPassword: "new123", ConfirmPassword: "new123"})
	require.EqualError(t, err, "Failed to change password")
	require.Equal(t, "Failed to change password", s.Snapshot().Profile.Error)
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/buildings", reply(http.StatusOK, `[{"_id":"b1","name":"A"}]`))
	r.Put("/app/buildings/{id}", reply(http.StatusOK, `{"_id":"b1","name":"B"}`))

	s := newStore(t, r, nil)
	ctx := context.Background()

	_, err := s.FetchBuildings(ctx)
	require.NoError(t, err)

	before := s.Snapshot()
	before.Building.Buildings[0].Name = "mutated"

	name := "B"
	_, err = s.UpdateBuilding(ctx, "b1", entity.BuildingPatch{Name: &name})
	require.NoError(t, err)

	require.Equal(t, "mutated", before.Building.Buildings[0].Name)
	require.Equal(t, "B", s.Snapshot().Building.Buildings[0].Name)
}

func TestStore_Subscribe(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/plans", reply(http.StatusOK, `[]`))
	r.Get("/plans/{id}", reply(http.StatusNotFound, ``))

	s := newStore(t, r, nil)
	ctx := context.Background()

	var (
		mu      sync.Mutex
		actions []store.Action
	)

	unsubscribe := s.Subscribe(func(a store.Action) {
		mu.Lock()
		defer mu.Unlock()

		actions = append(actions, a)
	})

	_, err := s.FetchPlans(ctx)
	require.NoError(t, err)

	_, err = s.FetchPlan(ctx, "p9")
	require.Error(t, err)

	unsubscribe()
	s.ClearSelectedPlan()

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, actions, 4)
	require.Equal(t, store.PhasePending, actions[0].Phase)
	require.Equal(t, store.PhaseFulfilled, actions[1].Phase)
	require.Equal(t, "plans/fetchPlans", actions[1].Type)
	require.Equal(t, store.PhaseRejected, actions[3].Phase)
	require.Equal(t, "Failed to fetch plan", actions[3].Error)
}

func TestStore_CancelledContext(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/app/visits", reply(http.StatusOK, `[]`))

	s := newStore(t, r, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.FetchVisits(ctx)
	require.ErrorIs(t, err, context.Canceled)

	st := s.Snapshot().Visits
	require.False(t, st.Loading)
	require.Equal(t, err.Error(), st.Error)
}
