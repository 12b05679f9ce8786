package analyzer

import (
	"errors"
	"fmt"
	"io/fs"
)

type ErrEmptyLogPath struct{}

func (e ErrEmptyLogPath) Error() string {
	return "log path is empty"
}

type ErrFlag struct {
	msg string
}

func NewErrFlag(msg string) ErrFlag {
	return ErrFlag{
		msg: msg,
	}
}

func (e ErrFlag) Error() string {
	return e.msg
}

// ErrSourceUnavailable means the log file could not be opened.
type ErrSourceUnavailable struct {
	Path string
	Err  error
}

func NewErrSourceUnavailable(path string, err error) error {
	return ErrSourceUnavailable{
		Path: path,
		Err:  err,
	}
}

func (e ErrSourceUnavailable) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("log file '%s' not found", e.Path)
	}

	return fmt.Sprintf("cannot open log file '%s': %s", e.Path, e.Err)
}

func (e ErrSourceUnavailable) Unwrap() error {
	return e.Err
}

// ErrRead means the log file failed while it was being read.
type ErrRead struct {
	Path string
	Err  error
}

func NewErrRead(path string, err error) error {
	return ErrRead{
		Path: path,
		Err:  err,
	}
}

func (e ErrRead) Error() string {
	return fmt.Sprintf("error parsing log file '%s': %s", e.Path, e.Err)
}

func (e ErrRead) Unwrap() error {
	return e.Err
}

// ErrNoData means not a single line of the log file could be used.
type ErrNoData struct {
	Path string
}

func (e ErrNoData) Error() string {
	return fmt.Sprintf("no valid log entries found in '%s'", e.Path)
}
