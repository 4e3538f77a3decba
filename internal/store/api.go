package store

import (
	"context"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

// API is the HaLaDesk backend as seen by the thunks.
type API interface {
	Login(ctx context.Context, creds entity.Credentials) (entity.Session, error)
	Register(ctx context.Context, reg entity.Registration) (entity.Session, error)

	Users(ctx context.Context) ([]entity.AdminUser, error)
	CreateUser(ctx context.Context, nu entity.NewUser) (entity.AdminUser, error)
	UpdateUser(ctx context.Context, id string, p entity.UserPatch) (entity.AdminUser, error)
	DeleteUser(ctx context.Context, id string) error
	ActivateUser(ctx context.Context, id string) (entity.AdminUser, error)
	InactivateUser(ctx context.Context, id string) (entity.AdminUser, error)

	Plans(ctx context.Context) ([]entity.Plan, error)
	Plan(ctx context.Context, id string) (entity.Plan, error)
	CreateActivePlan(ctx context.Context, planID string) (entity.ActivePlan, error)
	UserActivePlans(ctx context.Context, userID string) ([]entity.ActivePlan, error)
	CancelActivePlan(ctx context.Context, id string) (entity.ActivePlan, error)

	Buildings(ctx context.Context) ([]entity.Building, error)
	Building(ctx context.Context, id string) (entity.Building, error)
	CreateBuilding(ctx context.Context, nb entity.NewBuilding) (entity.Building, error)
	UpdateBuilding(ctx context.Context, id string, p entity.BuildingPatch) (entity.Building, error)
	DeleteBuilding(ctx context.Context, id string) error
	ActivateBuilding(ctx context.Context, id string) (*entity.Building, error)
	DeactivateBuilding(ctx context.Context, id string) (*entity.Building, error)

	Doormen(ctx context.Context) ([]entity.Doorman, error)
	Doorman(ctx context.Context, id string) (entity.Doorman, error)
	RegisterDoorman(ctx context.Context, nd entity.NewDoorman) (entity.Doorman, error)
	EditDoorman(ctx context.Context, id string, p entity.DoormanPatch) (entity.Doorman, error)
	AssignDoorman(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error)
	RemoveDoorman(ctx context.Context, ref entity.AssignmentRef) error
	BuildingDoormen(ctx context.Context, buildingID string) ([]entity.Doorman, error)
	Assignment(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error)
	ActivateAssignment(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error)
	DeactivateAssignment(ctx context.Context, ref entity.AssignmentRef) (entity.Assignment, error)

	Visitors(ctx context.Context) ([]entity.Visitor, error)
	Visitor(ctx context.Context, id string) (entity.Visitor, error)
	CreateVisitor(ctx context.Context, nv entity.NewVisitor) (entity.Visitor, error)
	UpdateVisitor(ctx context.Context, id string, p entity.VisitorPatch) (entity.Visitor, error)
	DeleteVisitor(ctx context.Context, id string) error

	Visits(ctx context.Context) ([]entity.Visit, error)
	Visit(ctx context.Context, id string) (entity.Visit, error)
	CreateVisit(ctx context.Context, nv entity.NewVisit) (entity.Visit, error)
	UpdateVisit(ctx context.Context, id string, p entity.VisitPatch) (entity.Visit, error)

	Profile(ctx context.Context) (entity.Profile, error)
	UpdateProfile(ctx context.Context, p entity.ProfilePatch) (entity.Profile, error)
	ChangePassword(ctx context.Context, pc entity.PasswordChange) error
}
