package entity

import (
	"fmt"
)

// Status is the active/inactive flag shared by buildings, doormen, visitors,
// assignments and catalog plans.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusInactive:
		return nil
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, s)
	}
}

func (s Status) String() string {
	return string(s)
}

// DisplayDefault is shown in place of an absent optional field.
const DisplayDefault = "-"

func OrDefault(s *string) string {
	if s == nil || *s == "" {
		return DisplayDefault
	}

	return *s
}
