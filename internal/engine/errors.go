package engine

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gocivil/internal/sni"
)

// ErrInvalidInput is matched by every InputError.
var ErrInvalidInput = errors.New("invalid input")

// ErrConfigLookup is matched by every unknown table key.
var ErrConfigLookup = sni.ErrUnknownKey

// InputError reports a request field outside its valid range.
type InputError struct {
	Field string
	Msg   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// Is lets errors.Is(err, ErrInvalidInput) match any input error.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, format string, args ...any) error {
	return &InputError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
