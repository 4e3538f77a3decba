package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
	"github.com/faridmohammadi00/entrypoint-app/internal/store"
)

const maxBodySize = 1 << 20

type Desk interface {
	Snapshot() store.State
	Authenticated() bool
	Login(ctx context.Context, email, password string) (entity.Session, error)
	Logout(ctx context.Context)
	Register(ctx context.Context, reg entity.Registration) (entity.Session, error)
	ChangePassword(ctx context.Context, pc entity.PasswordChange) error
	CreateBuilding(ctx context.Context, nb entity.NewBuilding) (entity.Building, error)
	RegisterDoorman(ctx context.Context, nd entity.NewDoorman) (entity.Doorman, error)
	CreateVisitor(ctx context.Context, nv entity.NewVisitor) (entity.Visitor, error)
	CreateUser(ctx context.Context, nu entity.NewUser) (entity.AdminUser, error)
	UpdateBuilding(ctx context.Context, id string, raw []byte) (entity.Building, error)
	EditDoorman(ctx context.Context, id string, raw []byte) (entity.Doorman, error)
	UpdateVisitor(ctx context.Context, id string, raw []byte) (entity.Visitor, error)
	CheckIn(ctx context.Context, nv entity.NewVisit) (entity.Visit, error)
	CheckOut(ctx context.Context, visitID string) (entity.Visit, error)
	UpdateVisit(ctx context.Context, id string, raw []byte) (entity.Visit, error)
}

// Refresher runs every sync job once.
type Refresher interface {
	RunAll(ctx context.Context) error
}

type Handler struct {
	desk Desk
	jobs Refresher
}

func NewHandler(desk Desk, jobs Refresher) *Handler {
	return &Handler{
		desk: desk,
		jobs: jobs,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Service is down")
	}
}

// State returns a snapshot of every slice. The session token is never exposed.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, h.desk.Snapshot())
}

type RefreshResponse struct {
	Errors []string `json:"errors,omitempty"`
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.desk.Authenticated() {
		sendDeskErr(ctx, w, fmt.Errorf("refresh: %w", entity.ErrUnauthenticated))
		return
	}

	var resp RefreshResponse

	err := h.jobs.RunAll(ctx)
	if err != nil {
		resp.Errors = unjoin(err)
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User *entity.User `json:"user"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	session, err := h.desk.Login(ctx, req.Email, req.Password)
	if err != nil {
		sendDeskErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, LoginResponse{User: session.User})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.desk.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// RegisterRequest carries the confirmation, which is checked locally and
// never sent to the backend.
type RegisterRequest struct {
	entity.Registration
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	req.Registration.ConfirmPassword = req.ConfirmPassword

	session, err := h.desk.Register(ctx, req.Registration)
	if err != nil {
		sendDeskErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, LoginResponse{User: session.User})
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var pc entity.PasswordChange

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&pc)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	err = h.desk.ChangePassword(ctx, pc)
	if err != nil {
		sendDeskErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	create(w, r, h.desk.CreateBuilding)
}

func (h *Handler) RegisterDoorman(w http.ResponseWriter, r *http.Request) {
	create(w, r, h.desk.RegisterDoorman)
}

func (h *Handler) CreateVisitor(w http.ResponseWriter, r *http.Request) {
	create(w, r, h.desk.CreateVisitor)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	create(w, r, h.desk.CreateUser)
}

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	create(w, r, h.desk.CheckIn)
}

func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visit, err := h.desk.CheckOut(ctx, chi.URLParam(r, "id"))
	if err != nil {
		sendDeskErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, visit)
}

func (h *Handler) UpdateBuilding(w http.ResponseWriter, r *http.Request) {
	patch(w, r, h.desk.UpdateBuilding)
}

func (h *Handler) EditDoorman(w http.ResponseWriter, r *http.Request) {
	patch(w, r, h.desk.EditDoorman)
}

func (h *Handler) UpdateVisitor(w http.ResponseWriter, r *http.Request) {
	patch(w, r, h.desk.UpdateVisitor)
}

func (h *Handler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	patch(w, r, h.desk.UpdateVisit)
}

func create[In, Out any](w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, in In) (Out, error)) {
	ctx := r.Context()

	var in In

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&in)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	v, err := fn(ctx, in)
	if err != nil {
		sendDeskErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, v)
}

// patch forwards the raw body so unknown fields are rejected by the entity patch type.
func patch[T any](w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id string, raw []byte) (T, error)) {
	ctx := r.Context()

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "read request body")
		return
	}

	v, err := fn(ctx, chi.URLParam(r, "id"), raw)
	if err != nil {
		sendDeskErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, v)
}

func unjoin(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		out := make([]string, 0, len(errs))

		for _, e := range errs {
			out = append(out, e.Error())
		}

		return out
	}

	return []string{err.Error()}
}
