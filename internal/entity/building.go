package entity

import (
	"fmt"
)

type BuildingType string

const (
	BuildingTypeBuilding BuildingType = "building"
	BuildingTypeComplex  BuildingType = "complex"
	BuildingTypeTower    BuildingType = "tower"
)

func (t BuildingType) Validate() error {
	switch t {
	case BuildingTypeBuilding, BuildingTypeComplex, BuildingTypeTower:
		return nil
	default:
		return fmt.Errorf("%w: unknown building type %q", ErrInvalidArgument, t)
	}
}

type QRCode struct {
	UniqueIdentifier string `json:"uniqueIdentifier"`
	ImageURL         string `json:"imageUrl"`
}

type Building struct {
	ID        string       `json:"_id"`
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	City      string       `json:"city"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Type      BuildingType `json:"type"`
	Status    Status       `json:"status,omitempty"`
	QRCode    *QRCode      `json:"qrCode,omitempty"`
	UserID    string       `json:"userId,omitempty"`
	CreatedAt *Date        `json:"createdAt,omitempty"`
	UpdatedAt *Date        `json:"updatedAt,omitempty"`
}

type NewBuilding struct {
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	City      string       `json:"city"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Type      BuildingType `json:"type"`
}

func (b NewBuilding) Validate() error {
	return b.Type.Validate()
}

// BuildingPatch lists the building fields accepted by PUT /app/buildings/:id.
type BuildingPatch struct {
	Name      *string       `json:"name,omitempty"`
	Address   *string       `json:"address,omitempty"`
	City      *string       `json:"city,omitempty"`
	Latitude  *float64      `json:"latitude,omitempty"`
	Longitude *float64      `json:"longitude,omitempty"`
	Type      *BuildingType `json:"type,omitempty"`
}

func (p BuildingPatch) Validate() error {
	return validateOptional(p.Type)
}
