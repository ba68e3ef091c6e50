package concept

import (
	"errors"
	"fmt"
)

// Kind classifies a quantity coercion failure
type Kind uint8

const (
	// KindOverflow means the value is numeric but infinite
	KindOverflow Kind = iota + 1
	// KindConversion means the text does not parse as a number
	KindConversion
	// KindUnsupportedType means the input is neither text nor a float
	KindUnsupportedType
)

// String returns the error kind name used as the log prefix
func (k Kind) String() string {
	switch k {
	case KindOverflow:
		return "OverflowError"
	case KindConversion:
		return "ValueError"
	case KindUnsupportedType:
		return "TypeError"
	}
	return "UnknownError"
}

// Sentinels matched by CoercionError through errors.Is
var (
	ErrOverflow        = errors.New("overflow")
	ErrConversion      = errors.New("conversion")
	ErrUnsupportedType = errors.New("unsupported type")
)

// CoercionError is returned when Quantity content cannot be normalized to a float64.
// Input is the original text, the default rendering of an infinite float, or the
// type name of an unsupported value.
type CoercionError struct {
	Kind  Kind
	Input string
}

func (e *CoercionError) Error() string {
	switch e.Kind {
	case KindOverflow:
		return fmt.Sprintf("The value '%s' is too large.", e.Input)
	case KindConversion:
		return fmt.Sprintf("Unable to convert '%s' to float.", e.Input)
	case KindUnsupportedType:
		return fmt.Sprintf("Unsupported type %s; expected 'str' or 'float'.", e.Input)
	}
	return fmt.Sprintf("coercion failed for '%s'", e.Input)
}

// Is reports whether target is the sentinel for this error's kind
func (e *CoercionError) Is(target error) bool {
	switch target {
	case ErrOverflow:
		return e.Kind == KindOverflow
	case ErrConversion:
		return e.Kind == KindConversion
	case ErrUnsupportedType:
		return e.Kind == KindUnsupportedType
	}
	return false
}
