//go:build linux

// Package linux wraps a handful of syscalls with Go types on top of the
// raw entry points. Errors come back as unix.Errno.
package linux

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/carved4/go-rawcall/pkg/errors"
	"github.com/carved4/go-rawcall/pkg/syscall"
)

func Getpid() int {
	return int(syscall.Syscall0(unix.SYS_GETPID))
}

func Gettid() int {
	return int(syscall.Syscall0(unix.SYS_GETTID))
}

func Getuid() int {
	return int(syscall.Syscall0(unix.SYS_GETUID))
}

func Close(fd int) error {
	_, err := errors.Check(syscall.Syscall1(unix.SYS_CLOSE, uintptr(fd)))
	return err
}

func Read(fd int, p []byte) (int, error) {
	var ptr unsafe.Pointer
	if len(p) > 0 {
		ptr = unsafe.Pointer(&p[0])
	}
	r, err := errors.Check(syscall.Syscall3(unix.SYS_READ, uintptr(fd), uintptr(ptr), uintptr(len(p))))
	return int(r), err
}

func Write(fd int, p []byte) (int, error) {
	var ptr unsafe.Pointer
	if len(p) > 0 {
		ptr = unsafe.Pointer(&p[0])
	}
	r, err := errors.Check(syscall.Syscall3(unix.SYS_WRITE, uintptr(fd), uintptr(ptr), uintptr(len(p))))
	return int(r), err
}

func Pread(fd int, p []byte, offset int64) (int, error) {
	var ptr unsafe.Pointer
	if len(p) > 0 {
		ptr = unsafe.Pointer(&p[0])
	}
	r, err := errors.Check(syscall.Syscall4(unix.SYS_PREAD64, uintptr(fd), uintptr(ptr), uintptr(len(p)), uintptr(offset)))
	return int(r), err
}

func Lseek(fd int, offset int64, whence int) (int64, error) {
	r, err := errors.Check(syscall.Syscall3(unix.SYS_LSEEK, uintptr(fd), uintptr(offset), uintptr(whence)))
	return int64(r), err
}

func Pipe2(flags int) (r, w int, err error) {
	var fds [2]int32
	_, err = errors.Check(syscall.Syscall2(unix.SYS_PIPE2, uintptr(unsafe.Pointer(&fds)), uintptr(flags)))
	if err != nil {
		return -1, -1, err
	}
	return int(fds[0]), int(fds[1]), nil
}

func Ftruncate(fd int, length int64) error {
	_, err := errors.Check(syscall.Syscall2(unix.SYS_FTRUNCATE, uintptr(fd), uintptr(length)))
	return err
}

func MemfdCreate(name string, flags int) (int, error) {
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		return -1, err
	}
	r, err := errors.Check(syscall.Syscall2(unix.SYS_MEMFD_CREATE, uintptr(unsafe.Pointer(p)), uintptr(flags)))
	if err != nil {
		return -1, err
	}
	return int(r), nil
}

// Mmap maps length bytes and returns the mapping as a slice. The slice is
// only valid until Munmap.
func Mmap(addr uintptr, length int, prot, flags, fd int, offset int64) ([]byte, error) {
	r, err := errors.Check(syscall.Syscall6(unix.SYS_MMAP, addr, uintptr(length), uintptr(prot), uintptr(flags), uintptr(fd), uintptr(offset)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(r)), length), nil
}

func Munmap(b []byte) error {
	if len(b) == 0 {
		return unix.EINVAL
	}
	_, err := errors.Check(syscall.Syscall2(unix.SYS_MUNMAP, uintptr(unsafe.Pointer(&b[0])), uintptr(len(b))))
	return err
}

// CopyFileRange copies up to length bytes between descriptors. A nil
// offset means the descriptor's own file position is used and advanced.
func CopyFileRange(in int, offIn *int64, out int, offOut *int64, length int, flags int) (int, error) {
	r, err := errors.Check(syscall.Syscall6(unix.SYS_COPY_FILE_RANGE,
		uintptr(in), uintptr(unsafe.Pointer(offIn)),
		uintptr(out), uintptr(unsafe.Pointer(offOut)),
		uintptr(length), uintptr(flags)))
	return int(r), err
}
