package layout

import "testing"

func TestWorkerRunsJobsInOrder(t *testing.T) {
	w := newWorker()

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		if err := w.submit(func() { got = append(got, i) }); err != nil {
			t.Fatalf("submit() error = %v", err)
		}
	}
	w.close()

	if len(got) != 5 {
		t.Fatalf("ran %d jobs, want 5", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("jobs ran out of order: %v", got)
		}
	}
}

func TestWorkerCloseWaitsForPendingJobs(t *testing.T) {
	w := newWorker()

	ran := false
	if err := w.submit(func() { ran = true }); err != nil {
		t.Fatalf("submit() error = %v", err)
	}
	w.close()

	if !ran {
		t.Error("close() returned before the pending job ran")
	}
}

func TestWorkerSubmitAfterClose(t *testing.T) {
	w := newWorker()
	w.close()

	if err := w.submit(func() {}); err == nil {
		t.Error("submit() after close did not return an error")
	}
}

func TestWorkerCloseIdempotent(t *testing.T) {
	w := newWorker()
	w.close()
	w.close()
}

func TestExecutorFunc(t *testing.T) {
	ran := false
	ExecutorFunc(func(fn func()) { fn() }).Execute(func() { ran = true })
	if !ran {
		t.Error("ExecutorFunc did not invoke the job")
	}
}
