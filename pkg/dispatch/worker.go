//go:build linux

package dispatch

import (
	"runtime"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/carved4/go-rawcall/pkg/config"
	"github.com/carved4/go-rawcall/pkg/errors"
	"github.com/carved4/go-rawcall/pkg/log"
	"github.com/carved4/go-rawcall/pkg/syscall"
)

type task struct {
	nr         uintptr
	args       []uintptr
	completion chan uintptr
}

// Worker runs calls on one OS thread for its whole life, for syscalls
// whose effect sticks to the calling thread (unshare, setns, prctl and
// friends).
type Worker struct {
	mu     sync.RWMutex
	tasks  chan *task
	closed bool
	done   chan struct{}
	tid    int
}

var w *Worker
var once sync.Once

// NewWorker starts a worker whose queue holds depth pending calls.
func NewWorker(depth int) *Worker {
	if depth < 1 {
		depth = 1
	}
	w := &Worker{
		tasks: make(chan *task, depth),
		done:  make(chan struct{}),
	}
	ready := make(chan int)
	go w.loop(ready)
	w.tid = <-ready
	log.L.Debug("worker started", "tid", w.tid, "depth", depth)
	return w
}

// GetWorker returns the process-wide worker, starting it on first use.
func GetWorker() *Worker {
	once.Do(func() {
		w = NewWorker(config.Load().QueueDepth)
	})
	return w
}

func (w *Worker) loop(ready chan<- int) {
	// never unlocked: the thread exits with the goroutine, taking any
	// per-thread state the calls left on it
	runtime.LockOSThread()
	defer close(w.done)

	ready <- int(syscall.Syscall0(unix.SYS_GETTID))
	for t := range w.tasks {
		t.completion <- invoke(t.nr, t.args)
	}
}

// ThreadID is the kernel thread id every call runs on.
func (w *Worker) ThreadID() int { return w.tid }

// Call is like the package-level Call but runs on the worker's thread.
func (w *Worker) Call(nr uintptr, args ...interface{}) (uintptr, error) {
	if len(args) > 6 {
		return 0, errors.New(errors.ErrTooManyArgs)
	}
	words, ok := processArgs(args)
	if !ok {
		return 0, errors.New(errors.ErrBadArg)
	}

	t := &task{nr: nr, args: words, completion: make(chan uintptr, 1)}
	w.mu.RLock()
	if w.closed {
		w.mu.RUnlock()
		return 0, errors.New(errors.ErrWorkerClosed)
	}
	w.tasks <- t
	w.mu.RUnlock()

	r := <-t.completion
	runtime.KeepAlive(args)
	log.L.Trace("worker call", "nr", nr, "nargs", len(words), "result", int64(r))
	return errors.Check(r)
}

// Close stops the worker after queued calls finish. Later calls fail with
// ErrWorkerClosed.
func (w *Worker) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.tasks)
	w.mu.Unlock()
	<-w.done
}

// CallWorker issues a call on the process-wide worker.
func CallWorker(nr uintptr, args ...interface{}) (uintptr, error) {
	return GetWorker().Call(nr, args...)
}
