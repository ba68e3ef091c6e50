package concept

import (
	"errors"
	"fmt"
)

// Standard identifies the external healthcare data format a concept is associated with
type Standard string

const (
	StandardCDA  Standard = "cda"
	StandardFHIR Standard = "fhir"
)

// ErrUnknownStandard is returned by ParseStandard for names outside the enumeration
var ErrUnknownStandard = errors.New("unknown standard")

// ParseStandard maps "cda" or "fhir" to a Standard
func ParseStandard(s string) (Standard, error) {
	switch Standard(s) {
	case StandardCDA, StandardFHIR:
		return Standard(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStandard, s)
}

func (s Standard) String() string { return string(s) }
