package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type Plan struct {
	ID             string          `json:"_id"`
	PlanName       string          `json:"planName"`
	Price          decimal.Decimal `json:"price"`
	BuildingCredit int             `json:"buildingCredit"`
	UserCredit     int             `json:"userCredit"`
	MonthlyVisits  int             `json:"monthlyVisits"`
	Status         Status          `json:"status"`
	Date           *Date           `json:"date,omitempty"`
	CreatedAt      *Date           `json:"createdAt,omitempty"`
	UpdatedAt      *Date           `json:"updatedAt,omitempty"`
}

type ActivePlanStatus string

const (
	ActivePlanStatusPending   ActivePlanStatus = "pending"
	ActivePlanStatusActive    ActivePlanStatus = "active"
	ActivePlanStatusExpired   ActivePlanStatus = "expired"
	ActivePlanStatusCancelled ActivePlanStatus = "cancelled"
)

// PlanRef is the planId of an active plan. The server sends either the bare
// id or the populated plan document.
type PlanRef struct {
	ID   string
	Plan *Plan
}

func (r PlanRef) MarshalJSON() ([]byte, error) {
	if r.Plan != nil {
		return json.Marshal(r.Plan)
	}

	return json.Marshal(r.ID)
}

func (r *PlanRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = PlanRef{}
		return nil
	}

	if b[0] == '"' {
		r.Plan = nil
		return json.Unmarshal(b, &r.ID)
	}

	var p Plan

	err := json.Unmarshal(b, &p)
	if err != nil {
		return fmt.Errorf("decode plan ref: %w", err)
	}

	r.ID = p.ID
	r.Plan = &p

	return nil
}

type ActivePlan struct {
	ID        string           `json:"_id"`
	UserID    string           `json:"userId"`
	PlanID    PlanRef          `json:"planId"`
	Status    ActivePlanStatus `json:"status"`
	Date      *Date            `json:"date,omitempty"`
	StartDate *Date            `json:"startDate,omitempty"`
	EndDate   *Date            `json:"endDate,omitempty"`
	CreatedAt *Date            `json:"createdAt,omitempty"`
	UpdatedAt *Date            `json:"updatedAt,omitempty"`
}

type NewActivePlan struct {
	PlanID string `json:"planId"`
}
