// Package syscall issues raw Linux system calls through fixed-arity entry
// points, one per argument count from zero to six.
//
// Every entry point returns a single encoded word: the kernel's result when
// the call succeeded, or the two's-complement negation of the error number
// when it failed. Backends whose ABI reports failure through a separate flag
// register (mips64) and backends that already return -errno (amd64, arm64)
// both go through encode, so callers test for failure the same way
// everywhere.
//
// Nothing here validates the syscall number or the arguments. Passing a
// bad pointer or a number the kernel doesn't expect gets you whatever the
// kernel does with it.
package syscall

// encode folds the kernel's (result, error flag) pair into one word.
// A set flag means r holds a positive errno.
func encode(r, errflag uintptr) uintptr {
	if errflag == 0 {
		return r
	}
	return -r
}
