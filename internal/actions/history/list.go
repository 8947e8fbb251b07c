package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/cliform-tools/cli/internal/dispatchers"
	"github.com/cliform-tools/cli/internal/format"
	"github.com/cliform-tools/cli/internal/store"
	"github.com/cliform-tools/cli/internal/ui/style"
	"github.com/cliform-tools/cli/internal/usage"
)

// List shows past runs, most recent first.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	filter := store.Filter{Limit: 20}
	if flags != nil {
		filter.Limit = flags.Int("--limit", 20)
		filter.CommandPath = flags.String("--path", "")
		if raw := flags.String("--since", ""); raw != "" {
			ts, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return usage.InvalidFlag("--since expects YYYY-MM-DD")
			}
			filter.Since = &ts
		}
		if flags.Has("--failed") {
			outcome := store.OutcomeFailed
			filter.Outcome = &outcome
		}
	}

	st, err := deps.Open()
	if err != nil {
		return err
	}
	defer st.Close()

	invocations, err := st.List(filter)
	if err != nil {
		return err
	}

	if len(invocations) == 0 {
		_, _ = deps.Println("no recorded runs")
		return nil
	}

	var b strings.Builder
	for _, inv := range invocations {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			style.Muted(format.DateTime(inv.StartedAt)),
			renderOutcome(inv.Outcome),
			inv.Cmdline,
		))
	}
	deps.Pager(b.String())
	return nil
}

func renderOutcome(o store.Outcome) string {
	switch o {
	case store.OutcomeOK:
		return style.Success("ok     ")
	case store.OutcomeFailed:
		return style.Error("failed ")
	case store.OutcomeStopped:
		return style.Warning("stopped")
	}
	return o.String()
}
