package report

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a snapshot has no rows; the average is undefined.
var ErrEmptyInput = errors.New("no rows to report")

// WriteFault wraps a failure to build or save the spreadsheet file.
type WriteFault struct {
	Path string
	Err  error
}

func (e *WriteFault) Error() string {
	return fmt.Sprintf("write snapshot %s: %v", e.Path, e.Err)
}

func (e *WriteFault) Unwrap() error { return e.Err }
