package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
	"github.com/faridmohammadi00/entrypoint-app/pkg/logger"
)

type Phase string

const (
	PhasePending   Phase = "pending"
	PhaseFulfilled Phase = "fulfilled"
	PhaseRejected  Phase = "rejected"
)

// Action describes one applied transition. Payload is the thunk result on
// fulfilment and must not be modified by subscribers.
type Action struct {
	Type      string `json:"type"`
	Slice     string `json:"slice"`
	Phase     Phase  `json:"phase,omitempty"`
	RequestID uint64 `json:"requestId,omitempty"`
	Error     string `json:"error,omitempty"`
	Payload   any    `json:"payload,omitempty"`
}

type Meta struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error"`
}

type State struct {
	Auth        AuthState        `json:"auth"`
	Users       UsersState       `json:"users"`
	Plans       PlansState       `json:"plans"`
	ActivePlans ActivePlansState `json:"activePlans"`
	Building    BuildingState    `json:"building"`
	Doorman     DoormanState     `json:"doorman"`
	Visitors    VisitorsState    `json:"visitors"`
	Visits      VisitsState      `json:"visits"`
	Profile     ProfileState     `json:"profile"`
}

const (
	sliceAuth        = "auth"
	sliceUsers       = "users"
	slicePlans       = "plans"
	sliceActivePlans = "activePlans"
	sliceBuilding    = "building"
	sliceDoorman     = "doorman"
	sliceVisitors    = "visitors"
	sliceVisits      = "visits"
	sliceProfile     = "profile"
)

func (st *State) meta(slice string) *Meta {
	switch slice {
	case sliceAuth:
		return &st.Auth.Meta
	case sliceUsers:
		return &st.Users.Meta
	case slicePlans:
		return &st.Plans.Meta
	case sliceActivePlans:
		return &st.ActivePlans.Meta
	case sliceBuilding:
		return &st.Building.Meta
	case sliceDoorman:
		return &st.Doorman.Meta
	case sliceVisitors:
		return &st.Visitors.Meta
	case sliceVisits:
		return &st.Visits.Meta
	case sliceProfile:
		return &st.Profile.Meta
	default:
		panic("store: unknown slice " + slice)
	}
}

// Store is the process wide state container. All transitions are serialized
// by mu, network calls run outside of it.
type Store struct {
	mu          sync.Mutex
	state       State
	fences      map[string]*fence
	subscribers map[int]func(Action)
	nextSub     int

	api     API
	storage Storage

	persistMu sync.Mutex
	readyOnce sync.Once
	ready     chan struct{}
}

func New(api API, storage Storage) *Store {
	s := &Store{
		api:         api,
		storage:     storage,
		fences:      map[string]*fence{},
		subscribers: map[int]func(Action){},
		ready:       make(chan struct{}),
	}

	for _, name := range []string{
		sliceAuth, sliceUsers, slicePlans, sliceActivePlans, sliceBuilding,
		sliceDoorman, sliceVisitors, sliceVisits, sliceProfile,
	} {
		s.fences[name] = &fence{}
	}

	s.state = initialState()

	return s
}

func initialState() State {
	return State{
		Users:       UsersState{Users: []entity.AdminUser{}},
		Plans:       PlansState{Plans: []entity.Plan{}},
		ActivePlans: ActivePlansState{ActivePlans: []entity.ActivePlan{}},
		Building:    BuildingState{Buildings: []entity.Building{}},
		Doorman:     DoormanState{Doormen: []entity.Doorman{}, Assignments: []entity.Assignment{}},
		Visitors:    VisitorsState{Visitors: []entity.Visitor{}},
		Visits:      VisitsState{Visits: []entity.Visit{}},
	}
}

// Subscribe registers fn for every applied action. fn runs outside the store
// lock and may read the store.
func (s *Store) Subscribe(fn func(Action)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.subscribers, id)
	}
}

// Snapshot returns a copy of the state that later transitions do not touch.
// Records are never mutated through nested pointers, so copying the slices
// and selected records is enough.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state

	st.Auth.User = clonePtr(st.Auth.User)
	st.Users.Users = slices.Clone(st.Users.Users)
	st.Plans.Plans = slices.Clone(st.Plans.Plans)
	st.Plans.Selected = clonePtr(st.Plans.Selected)
	st.ActivePlans.ActivePlans = slices.Clone(st.ActivePlans.ActivePlans)
	st.Building.Buildings = slices.Clone(st.Building.Buildings)
	st.Building.Selected = clonePtr(st.Building.Selected)
	st.Doorman.Doormen = slices.Clone(st.Doorman.Doormen)
	st.Doorman.Assignments = slices.Clone(st.Doorman.Assignments)
	st.Doorman.Selected = clonePtr(st.Doorman.Selected)
	st.Visitors.Visitors = slices.Clone(st.Visitors.Visitors)
	st.Visitors.Selected = clonePtr(st.Visitors.Selected)
	st.Visits.Visits = slices.Clone(st.Visits.Visits)
	st.Visits.Selected = clonePtr(st.Visits.Selected)
	st.Profile.Profile = clonePtr(st.Profile.Profile)

	return st
}

// dispatch applies a synchronous transition and notifies subscribers.
func (s *Store) dispatch(a Action, fn func(st *State)) {
	s.mu.Lock()
	fn(&s.state)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, a)
}

func (s *Store) subscribersLocked() []func(Action) {
	subs := make([]func(Action), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}

	return subs
}

func notify(subs []func(Action), a Action) {
	for _, fn := range subs {
		fn(a)
	}
}

type thunk[T any] struct {
	slice string
	typ   string
	// public thunks run without the session token.
	public bool
	call   func(ctx context.Context) (T, error)
	// apply runs under the store lock on fulfilment.
	apply func(v T, id uint64)
}

func run[T any](ctx context.Context, s *Store, t thunk[T]) (T, error) {
	s.mu.Lock()
	f := s.fences[t.slice]
	id := f.begin()
	m := s.state.meta(t.slice)
	m.Loading = true
	m.Error = ""
	token, user := s.state.Auth.Token, s.state.Auth.User
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, Action{Type: t.typ, Slice: t.slice, Phase: PhasePending, RequestID: id})

	ctx = logger.WithSlice(logger.WithNewRequestID(ctx), t.slice)
	if user != nil {
		ctx = logger.WithUserID(ctx, user.ID)
	}

	if !t.public {
		ctx = entity.CtxWithJWT(ctx, token)
	}

	slog.DebugContext(ctx, "thunk started", "action", t.typ, "seq", id)

	v, err := t.call(ctx)

	s.mu.Lock()
	latest := f.settle(id)
	m = s.state.meta(t.slice)
	m.Loading = f.loading()

	a := Action{Type: t.typ, Slice: t.slice, RequestID: id}

	if err != nil {
		a.Phase = PhaseRejected
		a.Error = err.Error()

		if latest {
			m.Error = a.Error
		}
	} else {
		a.Phase = PhaseFulfilled
		a.Payload = v

		if latest {
			m.Error = ""
		}

		if t.apply != nil {
			t.apply(v, id)
		}
	}

	subs = s.subscribersLocked()
	s.mu.Unlock()

	if err != nil {
		slog.WarnContext(ctx, "thunk rejected", "action", t.typ, "seq", id, "error", err)
	}

	notify(subs, a)

	return v, err
}

// fence orders the requests of one slice.
type fence struct {
	issued      uint64
	inFlight    int
	lastSettled uint64
	lastList    uint64
	lastOne     uint64
}

func (f *fence) begin() uint64 {
	f.issued++
	f.inFlight++

	return f.issued
}

// settle reports whether id is newer than every request settled so far.
func (f *fence) settle(id uint64) bool {
	f.inFlight--

	if id > f.lastSettled {
		f.lastSettled = id
		return true
	}

	return false
}

func (f *fence) loading() bool {
	return f.inFlight > 0
}

// replaceList reports whether a fetch-all result may replace the list.
func (f *fence) replaceList(id uint64) bool {
	if id < f.lastList {
		return false
	}

	f.lastList = id

	return true
}

// replaceOne is replaceList for the selected record.
func (f *fence) replaceOne(id uint64) bool {
	if id < f.lastOne {
		return false
	}

	f.lastOne = id

	return true
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

// splice replaces the element with the same id. It reports whether one was found.
func splice[T any](list []T, v T, id func(T) string) bool {
	i := slices.IndexFunc(list, func(e T) bool { return id(e) == id(v) })
	if i < 0 {
		return false
	}

	list[i] = v

	return true
}

func without[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))

	for _, e := range list {
		if !match(e) {
			out = append(out, e)
		}
	}

	return out
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}

	return slices.Clone(list)
}
