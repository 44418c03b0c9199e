//go:build linux && (amd64 || arm64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || loong64)

package syscall

import (
	"os"
	"runtime"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// No kernel we run on has this many syscalls; every ABI answers ENOSYS.
const noSuchSyscall = 4095

const sentinel = uintptr(0xdeadbeefcafef00d)

// byArity issues n through the entry point of the given arity, padding
// with the supplied args.
func byArity(arity int, n uintptr, a ...uintptr) uintptr {
	args := make([]uintptr, 6)
	copy(args, a)
	switch arity {
	case 0:
		return Syscall0(n)
	case 1:
		return Syscall1(n, args[0])
	case 2:
		return Syscall2(n, args[0], args[1])
	case 3:
		return Syscall3(n, args[0], args[1], args[2])
	case 4:
		return Syscall4(n, args[0], args[1], args[2], args[3])
	case 5:
		return Syscall5(n, args[0], args[1], args[2], args[3], args[4])
	default:
		return Syscall6(n, args[0], args[1], args[2], args[3], args[4], args[5])
	}
}

func errnoWord(e unix.Errno) uintptr {
	return -uintptr(e)
}

func TestGetpidEveryArity(t *testing.T) {
	want := uintptr(os.Getpid())
	for arity := 0; arity <= 6; arity++ {
		first := byArity(arity, unix.SYS_GETPID)
		second := byArity(arity, unix.SYS_GETPID)
		require.Equal(t, want, first, "arity %d", arity)
		require.Equal(t, first, second, "arity %d", arity)
	}
}

func TestUnknownSyscallEveryArity(t *testing.T) {
	for arity := 0; arity <= 6; arity++ {
		r := byArity(arity, noSuchSyscall, 1, 2, 3, 4, 5, 6)
		require.Equal(t, errnoWord(unix.ENOSYS), r, "arity %d", arity)
		require.Less(t, int64(r), int64(0))
	}
}

func TestBadDescriptor(t *testing.T) {
	badfd := ^uintptr(0)
	var b [8]byte
	buf := uintptr(unsafe.Pointer(&b[0]))

	require.Equal(t, errnoWord(unix.EBADF), Syscall1(unix.SYS_CLOSE, badfd))
	require.Equal(t, errnoWord(unix.EBADF), Syscall2(unix.SYS_FTRUNCATE, badfd, 0))
	require.Equal(t, errnoWord(unix.EBADF), Syscall3(unix.SYS_READ, badfd, buf, 1))
	require.Equal(t, errnoWord(unix.EBADF), Syscall4(unix.SYS_PREAD64, badfd, buf, 1, 0))
	require.Equal(t, errnoWord(unix.EBADF), Syscall6(unix.SYS_COPY_FILE_RANGE, badfd, 0, badfd, 0, 1, 0))
	runtime.KeepAlive(b)
}

func TestSentinelsDoNotLeak(t *testing.T) {
	pid := uintptr(os.Getpid())

	r := Syscall6(unix.SYS_GETPID, sentinel, sentinel, sentinel, sentinel, sentinel, sentinel)
	require.Equal(t, pid, r)
	for arity := 0; arity < 6; arity++ {
		require.Equal(t, pid, byArity(arity, unix.SYS_GETPID), "arity %d", arity)
	}

	// A failing six-argument call leaves nothing behind either.
	require.Equal(t, errnoWord(unix.ENOSYS), Syscall6(noSuchSyscall, sentinel, sentinel, sentinel, sentinel, sentinel, sentinel))
	require.Equal(t, errnoWord(unix.EBADF), Syscall1(unix.SYS_CLOSE, ^uintptr(0)))
	require.Equal(t, pid, Syscall0(unix.SYS_GETPID))
}

func TestIdempotentQueries(t *testing.T) {
	for _, nr := range []uintptr{unix.SYS_GETPID, unix.SYS_GETUID, unix.SYS_GETGID, unix.SYS_GETPPID} {
		first := Syscall0(nr)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, Syscall0(nr))
		}
	}
	require.Equal(t, uintptr(os.Getuid()), Syscall0(unix.SYS_GETUID))
}

func TestLseekEchoesOffset(t *testing.T) {
	fd := memfd(t)
	off := uintptr(12345)
	require.Equal(t, off, Syscall3(unix.SYS_LSEEK, fd, off, unix.SEEK_SET))
}

func TestMmapFixedEchoesAddress(t *testing.T) {
	page := uintptr(os.Getpagesize())
	prot := uintptr(unix.PROT_READ | unix.PROT_WRITE)
	flags := uintptr(unix.MAP_PRIVATE | unix.MAP_ANONYMOUS)

	addr := Syscall6(unix.SYS_MMAP, 0, page, prot, flags, ^uintptr(0), 0)
	require.GreaterOrEqual(t, int64(addr), int64(0), "mmap: %d", int64(addr))
	defer Syscall2(unix.SYS_MUNMAP, addr, page)

	again := Syscall6(unix.SYS_MMAP, addr, page, prot, flags|unix.MAP_FIXED, ^uintptr(0), 0)
	require.Equal(t, addr, again)
}

func TestMmapHonoursDescriptorAndOffset(t *testing.T) {
	page := os.Getpagesize()
	fd := memfd(t)

	data := make([]byte, 2*page)
	for i := range data {
		data[i] = 'a'
		if i >= page {
			data[i] = 'b'
		}
	}
	n := Syscall3(unix.SYS_WRITE, fd, uintptr(unsafe.Pointer(&data[0])), uintptr(len(data)))
	require.Equal(t, uintptr(len(data)), n)

	addr := Syscall6(unix.SYS_MMAP, 0, uintptr(page), unix.PROT_READ, unix.MAP_SHARED, fd, uintptr(page))
	require.GreaterOrEqual(t, int64(addr), int64(0), "mmap: %d", int64(addr))
	defer Syscall2(unix.SYS_MUNMAP, addr, uintptr(page))

	view := unsafe.Slice((*byte)(unsafe.Pointer(addr)), page)
	require.Equal(t, byte('b'), view[0])
	require.Equal(t, byte('b'), view[page-1])
}

func TestCopyFileRangeArgsFiveAndSix(t *testing.T) {
	in, out := memfd(t), memfd(t)
	payload := []byte("the quick brown fox")
	n := Syscall3(unix.SYS_WRITE, in, uintptr(unsafe.Pointer(&payload[0])), uintptr(len(payload)))
	require.Equal(t, uintptr(len(payload)), n)

	var offIn int64
	length := uintptr(9)
	r := Syscall6(unix.SYS_COPY_FILE_RANGE, in, uintptr(unsafe.Pointer(&offIn)), out, 0, length, 0)
	require.Equal(t, length, r)
	require.Equal(t, int64(length), offIn)

	r = Syscall6(unix.SYS_COPY_FILE_RANGE, in, uintptr(unsafe.Pointer(&offIn)), out, 0, length, 1)
	require.Equal(t, errnoWord(unix.EINVAL), r)
}

func TestConcurrentCallsStayThreadLocal(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			want := uintptr(unix.Gettid())
			for j := 0; j < 100; j++ {
				if got := Syscall0(unix.SYS_GETTID); got != want {
					errs <- "gettid changed under a locked thread"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func memfd(t *testing.T) uintptr {
	t.Helper()
	name, err := unix.BytePtrFromString("rawcall-test")
	require.NoError(t, err)
	fd := Syscall2(unix.SYS_MEMFD_CREATE, uintptr(unsafe.Pointer(name)), unix.MFD_CLOEXEC)
	if int64(fd) == -int64(unix.ENOSYS) {
		t.Skip("memfd_create not supported")
	}
	require.GreaterOrEqual(t, int64(fd), int64(0), "memfd_create: %d", int64(fd))
	t.Cleanup(func() { Syscall1(unix.SYS_CLOSE, fd) })
	return fd
}
