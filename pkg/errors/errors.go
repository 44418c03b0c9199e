package errors

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// error codes for misuse of the dispatch layer. kernel failures are
// reported as unix.Errno instead.
const (
	ErrTooManyArgs     = 1
	ErrBadArg          = 2
	ErrWorkerClosed    = 3
	ErrUnsupportedArch = 4
)

var messages = map[uint32]string{
	ErrTooManyArgs:     "too many arguments",
	ErrBadArg:          "argument cannot be passed in a register",
	ErrWorkerClosed:    "worker closed",
	ErrUnsupportedArch: "unsupported architecture",
}

type RawCallError struct {
	Code uint32
}

func (e *RawCallError) Error() string {
	if msg, ok := messages[e.Code]; ok {
		return fmt.Sprintf("rawcall %d: %s", e.Code, msg)
	}
	return fmt.Sprintf("rawcall %d", e.Code)
}

// New creates a new RawCallError
func New(code uint32) error {
	return &RawCallError{Code: code}
}

// IsCode checks if an error has a specific error code
func IsCode(err error, code uint32) bool {
	if rcErr, ok := err.(*RawCallError); ok {
		return rcErr.Code == code
	}
	return false
}

// Failed reports whether an encoded result word carries an error.
func Failed(r uintptr) bool {
	return int(r) < 0
}

// Errno returns the error number carried by r, or 0 if r is a success.
func Errno(r uintptr) unix.Errno {
	if !Failed(r) {
		return 0
	}
	return unix.Errno(-r)
}

// Check splits an encoded result into a value and an error.
func Check(r uintptr) (uintptr, error) {
	if e := Errno(r); e != 0 {
		return 0, e
	}
	return r, nil
}
