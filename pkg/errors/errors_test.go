package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func errnoWord(e unix.Errno) uintptr {
	return -uintptr(e)
}

func TestCheck(t *testing.T) {
	v, err := Check(42)
	require.NoError(t, err)
	require.Equal(t, uintptr(42), v)

	v, err = Check(errnoWord(unix.EBADF))
	require.Equal(t, uintptr(0), v)
	require.True(t, stderrors.Is(err, unix.EBADF))
}

func TestErrno(t *testing.T) {
	require.Equal(t, unix.Errno(0), Errno(0))
	require.Equal(t, unix.ENOENT, Errno(errnoWord(unix.ENOENT)))
	require.False(t, Failed(^uintptr(0)>>1))
	require.True(t, Failed(^(^uintptr(0) >> 1)))
	require.True(t, Failed(errnoWord(4095)))
	require.Equal(t, unix.Errno(4095), Errno(errnoWord(4095)))
}

func TestIsCode(t *testing.T) {
	err := New(ErrTooManyArgs)
	require.True(t, IsCode(err, ErrTooManyArgs))
	require.False(t, IsCode(err, ErrBadArg))
	require.False(t, IsCode(fmt.Errorf("plain"), ErrTooManyArgs))
	require.Equal(t, "rawcall 1: too many arguments", err.Error())
	require.Equal(t, "rawcall 99", New(99).Error())
}
