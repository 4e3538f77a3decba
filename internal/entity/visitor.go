package entity

import (
	"fmt"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Validate() error {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return nil
	default:
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidArgument, g)
	}
}

type Visitor struct {
	ID         string `json:"_id"`
	FullName   string `json:"fullname"`
	IDNumber   string `json:"id_number"`
	Birthday   Date   `json:"birthday"`
	Gender     Gender `json:"gender"`
	Region     string `json:"region"`
	ExpireDate Date   `json:"expire_date"`
	Phone      string `json:"phone"`
	Status     Status `json:"status"`
	CreatedAt  *Date  `json:"createdAt,omitempty"`
	UpdatedAt  *Date  `json:"updatedAt,omitempty"`
}

type NewVisitor struct {
	FullName   string `json:"fullname"`
	IDNumber   string `json:"id_number"`
	Birthday   Date   `json:"birthday"`
	Gender     Gender `json:"gender"`
	Region     string `json:"region"`
	ExpireDate Date   `json:"expire_date"`
	Phone      string `json:"phone"`
	Status     Status `json:"status"`
}

func (v NewVisitor) Validate() error {
	err := v.Gender.Validate()
	if err != nil {
		return err
	}

	return v.Status.Validate()
}

// VisitorPatch lists the visitor fields accepted by PUT /app/visitors/:id.
type VisitorPatch struct {
	FullName   *string `json:"fullname,omitempty"`
	IDNumber   *string `json:"id_number,omitempty"`
	Birthday   *Date   `json:"birthday,omitempty"`
	Gender     *Gender `json:"gender,omitempty"`
	Region     *string `json:"region,omitempty"`
	ExpireDate *Date   `json:"expire_date,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Status     *Status `json:"status,omitempty"`
}

func (p VisitorPatch) Validate() error {
	err := validateOptional(p.Gender)
	if err != nil {
		return err
	}

	return validateOptional(p.Status)
}
