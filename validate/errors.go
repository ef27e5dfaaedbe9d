package validate

import (
	"fmt"
	"strings"
)

// EmptyInputError reports an input series that must not be empty.
type EmptyInputError struct {
	Name string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s cannot be empty", e.Name)
}

// InvalidPeriodError reports a period parameter that does not fit the data.
type InvalidPeriodError struct {
	Period  int
	DataLen int
	Reason  string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period %d: %s (data length: %d)", e.Period, e.Reason, e.DataLen)
}

// Length pairs an input name with its observed length.
type Length struct {
	Name string
	Len  int
}

// MismatchedLengthError reports inputs that must share a length but do not.
// Lengths holds every checked input so the message names them all.
type MismatchedLengthError struct {
	Lengths []Length
}

func (e *MismatchedLengthError) Error() string {
	parts := make([]string, len(e.Lengths))
	for i, l := range e.Lengths {
		parts[i] = fmt.Sprintf("%s=%d", l.Name, l.Len)
	}
	return "mismatched lengths: " + strings.Join(parts, ", ")
}

// InvalidValueError reports a numeric argument outside its accepted range.
type InvalidValueError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v (%s)", e.Name, e.Value, e.Reason)
}

// UnsupportedVariantError reports an enum variant with no implementation.
type UnsupportedVariantError struct {
	Name string
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("unsupported variant: %s", e.Name)
}
