package entity

import (
	"fmt"
)

type VisitStatus string

const (
	VisitStatusPending   VisitStatus = "pending"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusCancelled VisitStatus = "cancelled"
)

func (s VisitStatus) Validate() error {
	switch s {
	case VisitStatusPending, VisitStatusCompleted, VisitStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown visit status %q", ErrInvalidArgument, s)
	}
}

type Visit struct {
	ID           string      `json:"_id"`
	BuildingID   string      `json:"building_id"`
	VisitorID    string      `json:"visitor_id"`
	UserID       string      `json:"user_id"`
	Purpose      string      `json:"purpose"`
	Unit         string      `json:"unit"`
	CheckInDate  Date        `json:"check_in_date"`
	CheckOutDate *Date       `json:"check_out_date,omitempty"`
	Status       VisitStatus `json:"status"`
	CreatedAt    *Date       `json:"createdAt,omitempty"`
	UpdatedAt    *Date       `json:"updatedAt,omitempty"`
}

type NewVisit struct {
	BuildingID  string      `json:"building_id"`
	VisitorID   string      `json:"visitor_id"`
	UserID      string      `json:"user_id"`
	Purpose     string      `json:"purpose"`
	Unit        string      `json:"unit"`
	CheckInDate Date        `json:"check_in_date"`
	Status      VisitStatus `json:"status"`
}

func (v NewVisit) Validate() error {
	return v.Status.Validate()
}

// VisitPatch lists the visit fields accepted by PUT /app/visits/:id.
type VisitPatch struct {
	BuildingID   *string      `json:"building_id,omitempty"`
	VisitorID    *string      `json:"visitor_id,omitempty"`
	Purpose      *string      `json:"purpose,omitempty"`
	Unit         *string      `json:"unit,omitempty"`
	CheckInDate  *Date        `json:"check_in_date,omitempty"`
	CheckOutDate *Date        `json:"check_out_date,omitempty"`
	Status       *VisitStatus `json:"status,omitempty"`
}

func (p VisitPatch) Validate() error {
	err := validateOptional(p.Status)
	if err != nil {
		return err
	}

	if p.CheckOutDate != nil && (p.Status == nil || *p.Status != VisitStatusCompleted) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, ErrCheckOutNotCompleted)
	}

	return nil
}
