//go:build linux

package syscall

// The entry points below are the only way into the backends. Each is marked
// uintptrescapes so an uintptr(unsafe.Pointer(p)) argument written in the
// call expression keeps p alive until the trap returns.

// Syscall0 issues syscall n with no arguments.
//
//go:uintptrescapes
func Syscall0(n uintptr) uintptr {
	return encode(rawSyscall0(n))
}

// Syscall1 issues syscall n with one argument.
//
//go:uintptrescapes
func Syscall1(n, a1 uintptr) uintptr {
	return encode(rawSyscall1(n, a1))
}

// Syscall2 issues syscall n with two arguments.
//
//go:uintptrescapes
func Syscall2(n, a1, a2 uintptr) uintptr {
	return encode(rawSyscall2(n, a1, a2))
}

// Syscall3 issues syscall n with three arguments.
//
//go:uintptrescapes
func Syscall3(n, a1, a2, a3 uintptr) uintptr {
	return encode(rawSyscall3(n, a1, a2, a3))
}

// Syscall4 issues syscall n with four arguments.
//
//go:uintptrescapes
func Syscall4(n, a1, a2, a3, a4 uintptr) uintptr {
	return encode(rawSyscall4(n, a1, a2, a3, a4))
}

// Syscall5 issues syscall n with five arguments.
//
//go:uintptrescapes
func Syscall5(n, a1, a2, a3, a4, a5 uintptr) uintptr {
	return encode(rawSyscall5(n, a1, a2, a3, a4, a5))
}

// Syscall6 issues syscall n with six arguments.
//
//go:uintptrescapes
func Syscall6(n, a1, a2, a3, a4, a5, a6 uintptr) uintptr {
	return encode(rawSyscall6(n, a1, a2, a3, a4, a5, a6))
}
