package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Validator interface {
	Validate() error
}

// DecodePatch decodes a raw update body into an explicit patch type.
// Fields the patch does not declare are rejected.
func DecodePatch[T Validator](data []byte) (T, error) {
	var p T

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(&p)
	if err != nil {
		return p, fmt.Errorf("%w: decode patch: %w", ErrInvalidArgument, err)
	}

	err = p.Validate()
	if err != nil {
		return p, err
	}

	return p, nil
}

func validateOptional[T Validator](v *T) error {
	if v == nil {
		return nil
	}

	return (*v).Validate()
}
