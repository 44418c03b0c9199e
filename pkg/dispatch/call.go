//go:build linux

// Package dispatch picks the fixed-arity entry point for a variable list
// of arguments and turns the encoded result into (value, error).
package dispatch

import (
	"runtime"

	"github.com/carved4/go-rawcall/pkg/errors"
	"github.com/carved4/go-rawcall/pkg/syscall"
)

// Call issues syscall nr with up to six arguments. Pointers, slices and
// unsafe.Pointers passed in args stay reachable until the call returns.
func Call(nr uintptr, args ...interface{}) (uintptr, error) {
	if len(args) > 6 {
		return 0, errors.New(errors.ErrTooManyArgs)
	}
	words, ok := processArgs(args)
	if !ok {
		return 0, errors.New(errors.ErrBadArg)
	}
	r := invoke(nr, words)
	runtime.KeepAlive(args)
	return errors.Check(r)
}

// invoke expects len(a) <= 6.
func invoke(nr uintptr, a []uintptr) uintptr {
	switch len(a) {
	case 0:
		return syscall.Syscall0(nr)
	case 1:
		return syscall.Syscall1(nr, a[0])
	case 2:
		return syscall.Syscall2(nr, a[0], a[1])
	case 3:
		return syscall.Syscall3(nr, a[0], a[1], a[2])
	case 4:
		return syscall.Syscall4(nr, a[0], a[1], a[2], a[3])
	case 5:
		return syscall.Syscall5(nr, a[0], a[1], a[2], a[3], a[4])
	default:
		return syscall.Syscall6(nr, a[0], a[1], a[2], a[3], a[4], a[5])
	}
}
