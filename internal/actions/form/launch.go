package form

import (
	"strings"
	"time"

	"github.com/cliform-tools/cli/internal/dispatchers"
	"github.com/cliform-tools/cli/internal/log"
	"github.com/cliform-tools/cli/internal/store"
	formui "github.com/cliform-tools/cli/internal/ui/form"
)

// Launch opens the interactive form over the bundled command tree.
func Launch(args []string, flags *dispatchers.ParsedFlags) error {
	return launch(args, flags, DefaultDeps())
}

func launch(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	modulePath := ""
	if flags != nil {
		modulePath = flags.String("--module", "")
	}

	output := formui.NewOutput()
	sess, err := deps.NewSession(output, modulePath)
	if err != nil {
		return err
	}

	opts := formui.Options{
		Root:     sess.Root,
		Registry: sess.Registry,
		Identity: sess.Identity,
		Output:   output,
	}

	if enabled, _ := deps.Get("history"); enabled == "true" {
		st, err := deps.OpenStore()
		if err != nil {
			log.Warn("form: history store unavailable: %v", err)
		} else {
			defer st.Close()
			limit := historyLimit(deps.Get)
			opts.Record = func(hierarchy []string, cmdline string, failed, stopped bool) {
				recordRun(st, hierarchy, cmdline, failed, stopped, limit)
			}
		}
	}

	return deps.RunForm(opts)
}

func recordRun(st *store.Store, hierarchy []string, cmdline string, failed, stopped bool, limit int) {
	outcome := store.OutcomeOK
	switch {
	case stopped:
		outcome = store.OutcomeStopped
	case failed:
		outcome = store.OutcomeFailed
	}

	_, err := st.Record(store.Invocation{
		CommandPath: strings.Join(hierarchy, " "),
		Cmdline:     cmdline,
		StartedAt:   time.Now(),
		Outcome:     outcome,
	})
	if err != nil {
		log.Warn("form: could not record invocation: %v", err)
		return
	}

	if limit > 0 {
		if _, err := st.Prune(limit); err != nil {
			log.Warn("form: history prune failed: %v", err)
		}
	}
}
