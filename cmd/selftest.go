//go:build linux

package main

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/carved4/go-rawcall"
)

const noSuchSyscall = 4095

// errnoWord is the encoded word a call failing with e returns.
func errnoWord(e unix.Errno) uintptr {
	return -uintptr(e)
}

type check struct {
	name string
	run  func() error
}

func runSelftest(out io.Writer) bool {
	checks := []check{
		{"getpid through every arity", checkGetpid},
		{"unknown syscall is -ENOSYS", checkENOSYS},
		{"bad descriptor is -EBADF", checkEBADF},
		{"lseek echoes its offset", checkLseek},
		{"mmap MAP_FIXED echoes its address", checkMmapFixed},
		{"repeated calls agree", checkStability},
	}

	ok := true
	for _, c := range checks {
		fmt.Fprintf(out, "Testing %s... ", c.name)
		if err := c.run(); err != nil {
			fmt.Fprintf(out, "FAILED: %v\n", err)
			ok = false
			continue
		}
		fmt.Fprintf(out, "PASSED\n")
	}
	return ok
}

func each(n uintptr, a uintptr) [7]uintptr {
	return [7]uintptr{
		rawcall.Syscall0(n),
		rawcall.Syscall1(n, a),
		rawcall.Syscall2(n, a, a),
		rawcall.Syscall3(n, a, a, a),
		rawcall.Syscall4(n, a, a, a, a),
		rawcall.Syscall5(n, a, a, a, a, a),
		rawcall.Syscall6(n, a, a, a, a, a, a),
	}
}

func checkGetpid() error {
	want := uintptr(os.Getpid())
	for arity, got := range each(unix.SYS_GETPID, 0x5a5a) {
		if got != want {
			return fmt.Errorf("arity %d: got %d, want %d", arity, got, want)
		}
	}
	return nil
}

func checkENOSYS() error {
	want := errnoWord(unix.ENOSYS)
	for arity, got := range each(noSuchSyscall, 1) {
		if got != want {
			return fmt.Errorf("arity %d: got %d, want %d", arity, int64(got), int64(want))
		}
	}
	return nil
}

func checkEBADF() error {
	r := rawcall.Syscall1(unix.SYS_CLOSE, ^uintptr(0))
	if _, err := rawcall.Check(r); err != unix.EBADF {
		return fmt.Errorf("close(-1) = %d, %v", int64(r), err)
	}
	return nil
}

func checkLseek() error {
	var fds [2]int32
	r := rawcall.Syscall2(unix.SYS_PIPE2, uintptr(unsafe.Pointer(&fds)), unix.O_CLOEXEC)
	if rawcall.Failed(r) {
		return fmt.Errorf("pipe2: %v", unix.Errno(-r))
	}
	defer rawcall.Syscall1(unix.SYS_CLOSE, uintptr(fds[0]))
	defer rawcall.Syscall1(unix.SYS_CLOSE, uintptr(fds[1]))

	// pipes can't seek; a regular file can
	if r := rawcall.Syscall3(unix.SYS_LSEEK, uintptr(fds[0]), 10, unix.SEEK_SET); r != errnoWord(unix.ESPIPE) {
		return fmt.Errorf("lseek on a pipe = %d", int64(r))
	}
	f, err := os.CreateTemp("", "rawcall")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	defer f.Close()
	if r := rawcall.Syscall3(unix.SYS_LSEEK, f.Fd(), 4096, unix.SEEK_SET); r != 4096 {
		return fmt.Errorf("lseek = %d", int64(r))
	}
	return nil
}

func checkMmapFixed() error {
	page := uintptr(os.Getpagesize())
	prot := uintptr(unix.PROT_READ | unix.PROT_WRITE)
	flags := uintptr(unix.MAP_PRIVATE | unix.MAP_ANONYMOUS)
	addr := rawcall.Syscall6(unix.SYS_MMAP, 0, page, prot, flags, ^uintptr(0), 0)
	if rawcall.Failed(addr) {
		return fmt.Errorf("mmap: %v", unix.Errno(-addr))
	}
	defer rawcall.Syscall2(unix.SYS_MUNMAP, addr, page)

	if again := rawcall.Syscall6(unix.SYS_MMAP, addr, page, prot, flags|unix.MAP_FIXED, ^uintptr(0), 0); again != addr {
		return fmt.Errorf("got 0x%x, want 0x%x", again, addr)
	}
	return nil
}

func checkStability() error {
	first := rawcall.Syscall0(unix.SYS_GETUID)
	for i := 0; i < 5; i++ {
		if got := rawcall.Syscall0(unix.SYS_GETUID); got != first {
			return fmt.Errorf("call %d: got %d, want %d", i, got, first)
		}
	}
	return nil
}
