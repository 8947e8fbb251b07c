// Package runner validates a selected command hierarchy against its
// bound controls, assembles the argument sets, and executes the
// resulting actions on a worker goroutine that can be stopped between
// tasks.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/cliform-tools/cli/internal/binding"
	"github.com/cliform-tools/cli/internal/codec"
	"github.com/cliform-tools/cli/internal/controls"
	"github.com/cliform-tools/cli/internal/log"
	"github.com/cliform-tools/cli/internal/params"
)

// Task is one fully resolved command invocation, ready to run.
type Task struct {
	Hierarchy []string
	Command   *params.Command
	Run       func() error
}

// Resolver turns the live control state of a command hierarchy into
// executable tasks. Controls that pop interactive dialogs resolve last,
// and only after everything else validated cleanly; stdin-reading path
// controls come first among those.
type Resolver struct {
	Registry *binding.Registry
	Root     *params.Command
	Identity codec.Identity

	// Diag receives validation failure messages; Out receives the echoed
	// command line. They default to stderr and stdout.
	Diag io.Writer
	Out  io.Writer

	// Stdin supplies the content of a path control whose raw value is
	// "-". When nil the control's own pipeline runs instead.
	Stdin func(*controls.PathControl) (any, controls.Error)
}

func (r *Resolver) diag() io.Writer {
	if r.Diag != nil {
		return r.Diag
	}
	return os.Stderr
}

func (r *Resolver) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

// Resolve validates every command on the path from the root to the
// selected leaf. All of them must validate before any task is returned;
// one failing control aborts the whole hierarchy.
func (r *Resolver) Resolve(hierarchy []string) ([]Task, bool) {
	if len(hierarchy) == 0 || hierarchy[0] != r.Root.Name {
		return nil, false
	}

	var tasks []Task
	cmd := r.Root
	for i := range hierarchy {
		if i > 0 {
			cmd = cmd.Subcommand(hierarchy[i])
			if cmd == nil {
				fmt.Fprintf(r.diag(), "no such command: %s\n", hierarchy[i])
				return nil, false
			}
		}
		path := hierarchy[:i+1]
		task, ok := r.resolveCommand(path, cmd)
		if !ok {
			return nil, false
		}
		if task != nil {
			tasks = append(tasks, *task)
		}
	}
	return tasks, true
}

// resolveCommand validates one command's controls and captures its
// action. A nil task with ok=true means the command validated but has
// nothing to run (a plain group).
func (r *Resolver) resolveCommand(path []string, cmd *params.Command) (*Task, bool) {
	kwargs := make(map[string]any)
	key := binding.PathKey(path)

	var deferred []controls.Control
	hasError := false

	for _, name := range r.Registry.Names(key) {
		ctl, _ := r.Registry.Lookup(key, name)
		p := ctl.Param()

		if !ctl.IsEnabled() {
			def := p.DefaultValue(nil)
			if p.Multiple && def == nil {
				def = []any{}
			}
			kwargs[name] = def
			continue
		}

		// Dialog-backed controls validate last; a stdin-reading path
		// control still comes before the yes/no dialogs. Each stdin
		// control is prepended, so several of them prompt in reverse
		// registration order.
		if _, ok := ctl.(*controls.ConfirmDialogControl); ok {
			deferred = append(deferred, ctl)
			continue
		}
		if pc, ok := ctl.(*controls.PathControl); ok && pc.WantsStdin() {
			deferred = append([]controls.Control{pc}, deferred...)
			continue
		}

		value, cerr := ctl.Value()
		if r.report(cerr) {
			hasError = true
			continue
		}
		if p.ExposeValue {
			kwargs[name] = value
		}
	}

	if hasError {
		return nil, false
	}

	for _, ctl := range deferred {
		var value any
		var cerr controls.Error
		if pc, ok := ctl.(*controls.PathControl); ok && pc.WantsStdin() && r.Stdin != nil {
			value, cerr = r.Stdin(pc)
		} else {
			value, cerr = ctl.Value()
		}
		if r.report(cerr) {
			return nil, false
		}
		if ctl.Param().ExposeValue {
			kwargs[ctl.Param().Name] = value
		}
	}

	if cmd.Action == nil {
		return nil, true
	}

	args := make([]any, len(cmd.Positional))
	for i, name := range cmd.Positional {
		args[i] = kwargs[name]
		delete(kwargs, name)
	}

	if len(cmd.Positional) > 0 {
		fmt.Fprintln(r.out(), codec.Export(r.Registry, r.Root, path, r.Identity))
	}

	action := cmd.Action
	hierarchy := append([]string{}, path...)
	return &Task{
		Hierarchy: hierarchy,
		Command:   cmd,
		Run:       func() error { return action(args, kwargs) },
	}, true
}

// report prints a resolution failure and tells whether one occurred.
// Abort and exit signals stay silent but still count as failures.
func (r *Resolver) report(cerr controls.Error) bool {
	if !cerr.IsError() {
		return false
	}
	if msg := cerr.Message(); msg != "" {
		fmt.Fprintln(r.diag(), msg)
	}
	log.Debug("runner: resolution failed for %q (kind %d)", cerr.Trigger, cerr.Kind)
	return true
}
