package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/cliform-tools/cli/internal/log"
)

// Executor runs resolved tasks on a single worker goroutine. Stop is
// cooperative: the cancel flag is checked between tasks, so a running
// task always finishes before the run winds down.
type Executor struct {
	cancel  atomic.Bool
	running atomic.Bool

	// Diag receives task failures and the stop notice; stderr when nil.
	Diag io.Writer
}

// ErrBusy is returned when a run is started while another is in flight.
var ErrBusy = errors.New("runner: execution already in progress")

func (e *Executor) diag() io.Writer {
	if e.Diag != nil {
		return e.Diag
	}
	return os.Stderr
}

// Start launches the tasks in order on a fresh goroutine. onFinish fires
// exactly once, whether the run completes, fails, or is stopped. A task
// returning an error is reported and does not stop later tasks.
func (e *Executor) Start(tasks []Task, onFinish func()) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrBusy
	}
	e.cancel.Store(false)

	runID := uuid.NewString()
	log.Info("runner: run %s started, %d task(s)", runID, len(tasks))

	go func() {
		var once sync.Once
		finish := func() {
			once.Do(func() {
				e.running.Store(false)
				if onFinish != nil {
					onFinish()
				}
			})
		}
		defer finish()

		for _, t := range tasks {
			if e.cancel.Load() {
				fmt.Fprintln(e.diag(), "Execution stopped!")
				log.Info("runner: run %s stopped before %q", runID, t.Command.Name)
				return
			}
			if err := t.Run(); err != nil {
				fmt.Fprintf(e.diag(), "%v\n", err)
				log.Error("runner: run %s task %q failed: %v", runID, t.Command.Name, err)
			}
		}
		log.Info("runner: run %s finished", runID)
	}()
	return nil
}

// Stop requests cancellation of the current run. It returns immediately;
// the worker observes the flag before its next task.
func (e *Executor) Stop() {
	e.cancel.Store(true)
}

// Running reports whether a run is in flight.
func (e *Executor) Running() bool {
	return e.running.Load()
}
