package parser

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned for a line that does not follow the combined log format.
var ErrNoMatch = errors.New("line does not match combined log format")

type ErrRead struct {
	Line int
	Err  error
}

func NewErrRead(line int, err error) error {
	return ErrRead{
		Line: line,
		Err:  err,
	}
}

func (e ErrRead) Error() string {
	return fmt.Sprintf("read after line #%d: %s", e.Line, e.Err)
}

func (e ErrRead) Unwrap() error {
	return e.Err
}
