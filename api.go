//go:build linux

package rawcall

import (
	"github.com/carved4/go-rawcall/pkg/abi"
	"github.com/carved4/go-rawcall/pkg/dispatch"
	"github.com/carved4/go-rawcall/pkg/errors"
	"github.com/carved4/go-rawcall/pkg/syscall"
)

var CallWorker = dispatch.CallWorker
var GetWorker = dispatch.GetWorker
var Native = abi.Native
var DetectFile = abi.DetectFile

// Call issues nr with up to six arguments of any register-sized type and
// splits the result into a value and a unix.Errno.
func Call(nr uintptr, args ...interface{}) (uintptr, error) {
	return dispatch.Call(nr, args...)
}

// Raw entry points. These are functions rather than variables so that
// pointer arguments converted in the call expression stay pinned.

//go:uintptrescapes
func Syscall0(nr uintptr) uintptr {
	return syscall.Syscall0(nr)
}

//go:uintptrescapes
func Syscall1(nr, a1 uintptr) uintptr {
	return syscall.Syscall1(nr, a1)
}

//go:uintptrescapes
func Syscall2(nr, a1, a2 uintptr) uintptr {
	return syscall.Syscall2(nr, a1, a2)
}

//go:uintptrescapes
func Syscall3(nr, a1, a2, a3 uintptr) uintptr {
	return syscall.Syscall3(nr, a1, a2, a3)
}

//go:uintptrescapes
func Syscall4(nr, a1, a2, a3, a4 uintptr) uintptr {
	return syscall.Syscall4(nr, a1, a2, a3, a4)
}

//go:uintptrescapes
func Syscall5(nr, a1, a2, a3, a4, a5 uintptr) uintptr {
	return syscall.Syscall5(nr, a1, a2, a3, a4, a5)
}

//go:uintptrescapes
func Syscall6(nr, a1, a2, a3, a4, a5, a6 uintptr) uintptr {
	return syscall.Syscall6(nr, a1, a2, a3, a4, a5, a6)
}

// Failed reports whether a raw result word carries an error.
func Failed(r uintptr) bool {
	return errors.Failed(r)
}

// Check splits a raw result word into a value and a unix.Errno.
func Check(r uintptr) (uintptr, error) {
	return errors.Check(r)
}
