package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	// ErrNoValidRecords marks a run where no row survived validation.
	ErrNoValidRecords = errors.New("no valid records")
)

// NoValidRecordsError reports a run with zero survivors: either the
// caller supplied zero rows, or every row was dropped during validation.
type NoValidRecordsError struct {
	Dropped int
}

func (e *NoValidRecordsError) Error() string {
	if e.Dropped == 0 {
		return "no player records in input"
	}
	return fmt.Sprintf("no valid player records in input (%d dropped)", e.Dropped)
}

// Is makes errors.Is(err, ErrNoValidRecords) work for wrapped errors.
func (e *NoValidRecordsError) Is(target error) bool { return target == ErrNoValidRecords }
