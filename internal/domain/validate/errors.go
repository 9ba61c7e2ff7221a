package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	// ErrSchema marks a structurally unusable input (required columns absent).
	ErrSchema = errors.New("schema error")
)

// SchemaError reports which required columns the input is missing.
// Fatal: the run aborts rather than guessing a schema.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Is makes errors.Is(err, ErrSchema) work for wrapped schema errors.
func (e *SchemaError) Is(target error) bool { return target == ErrSchema }
