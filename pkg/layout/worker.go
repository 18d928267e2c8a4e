package layout

import (
	"sync"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
)

// Executor schedules the apply phase of an asynchronous layout onto the
// caller's chosen context, typically a UI event loop. Execute must run
// the function exactly once.
type Executor interface {
	Execute(fn func())
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(fn func())

// Execute calls f(fn).
func (f ExecutorFunc) Execute(fn func()) { f(fn) }

// workerQueueSize bounds how many requests may wait behind the one in
// flight before submission blocks.
const workerQueueSize = 16

// worker runs submitted jobs one at a time in submission order.
type worker struct {
	mu     sync.Mutex
	jobs   chan func()
	closed bool
	done   chan struct{}
}

func newWorker() *worker {
	w := &worker{
		jobs: make(chan func(), workerQueueSize),
		done: make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *worker) loop() {
	defer close(w.done)
	for job := range w.jobs {
		job()
	}
}

// submit enqueues a job, blocking while the queue is full.
func (w *worker) submit(job func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New(errors.ErrCodeInternal, "layout worker is closed")
	}
	w.jobs <- job
	return nil
}

// close stops accepting jobs, lets queued ones finish, and waits for the
// loop to exit.
func (w *worker) close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()
	<-w.done
}
