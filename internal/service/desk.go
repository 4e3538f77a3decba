package service

import (
	"context"
	"fmt"
	"time"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
	"github.com/faridmohammadi00/entrypoint-app/internal/store"
)

// Store is the part of the state store driven by the desk.
type Store interface {
	Snapshot() store.State
	Token() string
	CurrentUser() *entity.User

	Login(ctx context.Context, creds entity.Credentials) (entity.Session, error)
	Register(ctx context.Context, reg entity.Registration) (entity.Session, error)
	Logout(ctx context.Context)

	FetchUsers(ctx context.Context) ([]entity.AdminUser, error)
	CreateUser(ctx context.Context, nu entity.NewUser) (entity.AdminUser, error)

	FetchPlans(ctx context.Context) ([]entity.Plan, error)
	FetchUserActivePlans(ctx context.Context, userID string) ([]entity.ActivePlan, error)

	FetchBuildings(ctx context.Context) ([]entity.Building, error)
	CreateBuilding(ctx context.Context, nb entity.NewBuilding) (entity.Building, error)
	UpdateBuilding(ctx context.Context, id string, p entity.BuildingPatch) (entity.Building, error)

	FetchDoormen(ctx context.Context) ([]entity.Doorman, error)
	RegisterDoorman(ctx context.Context, nd entity.NewDoorman) (entity.Doorman, error)
	EditDoorman(ctx context.Context, id string, p entity.DoormanPatch) (entity.Doorman, error)

	FetchVisitors(ctx context.Context) ([]entity.Visitor, error)
	CreateVisitor(ctx context.Context, nv entity.NewVisitor) (entity.Visitor, error)
	UpdateVisitor(ctx context.Context, id string, p entity.VisitorPatch) (entity.Visitor, error)

	FetchVisits(ctx context.Context) ([]entity.Visit, error)
	CreateVisit(ctx context.Context, nv entity.NewVisit) (entity.Visit, error)
	UpdateVisit(ctx context.Context, id string, p entity.VisitPatch) (entity.Visit, error)
	CompleteVisit(ctx context.Context, id string, at time.Time) (entity.Visit, error)

	FetchProfile(ctx context.Context) (entity.Profile, error)
	ChangePassword(ctx context.Context, pc entity.PasswordChange) error
}

// Desk validates operator input before it reaches the store. A validation
// error is returned before any request is made and leaves the state as is.
type Desk struct {
	store Store
	now   func() time.Time
}

func NewDesk(s Store) *Desk {
	return &Desk{store: s, now: time.Now}
}

func (d *Desk) Snapshot() store.State {
	return d.store.Snapshot()
}

func (d *Desk) Authenticated() bool {
	return d.store.Token() != ""
}

func (d *Desk) Login(ctx context.Context, email, password string) (entity.Session, error) {
	creds := entity.Credentials{Email: email, Password: password}

	err := ValidateLogin(creds)
	if err != nil {
		return entity.Session{}, err
	}

	return d.store.Login(ctx, creds)
}

func (d *Desk) Register(ctx context.Context, reg entity.Registration) (entity.Session, error) {
	err := ValidateRegistration(reg)
	if err != nil {
		return entity.Session{}, err
	}

	return d.store.Register(ctx, reg)
}

func (d *Desk) Logout(ctx context.Context) {
	d.store.Logout(ctx)
}

func (d *Desk) ChangePassword(ctx context.Context, pc entity.PasswordChange) error {
	err := ValidatePasswordChange(pc)
	if err != nil {
		return err
	}

	return d.store.ChangePassword(ctx, pc)
}

func (d *Desk) CreateBuilding(ctx context.Context, nb entity.NewBuilding) (entity.Building, error) {
	err := ValidateNewBuilding(nb)
	if err != nil {
		return entity.Building{}, err
	}

	return d.store.CreateBuilding(ctx, nb)
}

func (d *Desk) UpdateBuilding(ctx context.Context, id string, raw []byte) (entity.Building, error) {
	p, err := entity.DecodePatch[entity.BuildingPatch](raw)
	if err != nil {
		return entity.Building{}, err
	}

	return d.store.UpdateBuilding(ctx, id, p)
}

func (d *Desk) RegisterDoorman(ctx context.Context, nd entity.NewDoorman) (entity.Doorman, error) {
	err := ValidateNewDoorman(nd)
	if err != nil {
		return entity.Doorman{}, err
	}

	return d.store.RegisterDoorman(ctx, nd)
}

func (d *Desk) EditDoorman(ctx context.Context, id string, raw []byte) (entity.Doorman, error) {
	p, err := entity.DecodePatch[entity.DoormanPatch](raw)
	if err != nil {
		return entity.Doorman{}, err
	}

	if p.Email != nil {
		err = ValidateEmail(*p.Email)
		if err != nil {
			return entity.Doorman{}, err
		}
	}

	return d.store.EditDoorman(ctx, id, p)
}

func (d *Desk) CreateVisitor(ctx context.Context, nv entity.NewVisitor) (entity.Visitor, error) {
	err := ValidateNewVisitor(nv)
	if err != nil {
		return entity.Visitor{}, err
	}

	return d.store.CreateVisitor(ctx, nv)
}

func (d *Desk) UpdateVisitor(ctx context.Context, id string, raw []byte) (entity.Visitor, error) {
	p, err := entity.DecodePatch[entity.VisitorPatch](raw)
	if err != nil {
		return entity.Visitor{}, err
	}

	return d.store.UpdateVisitor(ctx, id, p)
}

// CheckIn records a new pending visit starting now.
func (d *Desk) CheckIn(ctx context.Context, nv entity.NewVisit) (entity.Visit, error) {
	if nv.Status == "" {
		nv.Status = entity.VisitStatusPending
	}

	if nv.CheckInDate.IsZero() {
		nv.CheckInDate = entity.NewDate(d.now())
	}

	if nv.UserID == "" {
		if u := d.store.CurrentUser(); u != nil {
			nv.UserID = u.ID
		}
	}

	err := ValidateNewVisit(nv)
	if err != nil {
		return entity.Visit{}, err
	}

	return d.store.CreateVisit(ctx, nv)
}

func (d *Desk) CheckOut(ctx context.Context, visitID string) (entity.Visit, error) {
	if visitID == "" {
		return entity.Visit{}, &entity.FieldError{Field: "id", Err: entity.ErrFieldRequired}
	}

	return d.store.CompleteVisit(ctx, visitID, d.now())
}

func (d *Desk) UpdateVisit(ctx context.Context, id string, raw []byte) (entity.Visit, error) {
	p, err := entity.DecodePatch[entity.VisitPatch](raw)
	if err != nil {
		return entity.Visit{}, err
	}

	return d.store.UpdateVisit(ctx, id, p)
}

func (d *Desk) CreateUser(ctx context.Context, nu entity.NewUser) (entity.AdminUser, error) {
	err := ValidateNewUser(nu)
	if err != nil {
		return entity.AdminUser{}, err
	}

	return d.store.CreateUser(ctx, nu)
}

func (d *Desk) requireSession() error {
	if !d.Authenticated() {
		return fmt.Errorf("desk: %w", entity.ErrUnauthenticated)
	}

	return nil
}
