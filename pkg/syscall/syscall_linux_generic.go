//go:build linux && !mips64 && !mips64le

package syscall

import "golang.org/x/sys/unix"

// Everywhere else the trap goes through x/sys/unix. Those ABIs return
// -errno in the result register and unix splits it back out, so the errno
// is put back into flag form here and encode sees the same shape as on
// mips64.

func raw(trap, a1, a2, a3, a4, a5, a6 uintptr) (r, errflag uintptr) {
	r1, _, errno := unix.RawSyscall6(trap, a1, a2, a3, a4, a5, a6)
	if errno != 0 {
		return uintptr(errno), 1
	}
	return r1, 0
}

func rawSyscall0(trap uintptr) (r, errflag uintptr) {
	return raw(trap, 0, 0, 0, 0, 0, 0)
}

func rawSyscall1(trap, a1 uintptr) (r, errflag uintptr) {
	return raw(trap, a1, 0, 0, 0, 0, 0)
}

func rawSyscall2(trap, a1, a2 uintptr) (r, errflag uintptr) {
	return raw(trap, a1, a2, 0, 0, 0, 0)
}

func rawSyscall3(trap, a1, a2, a3 uintptr) (r, errflag uintptr) {
	return raw(trap, a1, a2, a3, 0, 0, 0)
}

func rawSyscall4(trap, a1, a2, a3, a4 uintptr) (r, errflag uintptr) {
	return raw(trap, a1, a2, a3, a4, 0, 0)
}

func rawSyscall5(trap, a1, a2, a3, a4, a5 uintptr) (r, errflag uintptr) {
	return raw(trap, a1, a2, a3, a4, a5, 0)
}

func rawSyscall6(trap, a1, a2, a3, a4, a5, a6 uintptr) (r, errflag uintptr) {
	return raw(trap, a1, a2, a3, a4, a5, a6)
}
