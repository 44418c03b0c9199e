//go:build linux && (mips64 || mips64le)

package syscall

// n64 register contract, implemented in asm_linux_mips64x.s:
//
//	v0 ($2)        syscall number in, result or errno out
//	a0-a3 ($4-$7)  args 1-4
//	t0, t1 ($8,$9) args 5-6, no stack slots unlike o32
//	a3 ($7)        error flag out, 0 or 1
//	$8-$15,$24,$25 destroyed on every call
//
// The stubs hand back v0 and a3 untouched. Under ABI0 every register but
// SP, g and SB is caller-saved, so the scratch set needs no saving here.

func rawSyscall0(trap uintptr) (r, errflag uintptr)
func rawSyscall1(trap, a1 uintptr) (r, errflag uintptr)
func rawSyscall2(trap, a1, a2 uintptr) (r, errflag uintptr)
func rawSyscall3(trap, a1, a2, a3 uintptr) (r, errflag uintptr)
func rawSyscall4(trap, a1, a2, a3, a4 uintptr) (r, errflag uintptr)
func rawSyscall5(trap, a1, a2, a3, a4, a5 uintptr) (r, errflag uintptr)
func rawSyscall6(trap, a1, a2, a3, a4, a5, a6 uintptr) (r, errflag uintptr)
