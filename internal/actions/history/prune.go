package history

import (
	"strconv"

	"github.com/cliform-tools/cli/internal/dispatchers"
)

// Prune drops all but the newest runs. The keep count defaults to the
// configured history_limit.
func Prune(args []string, flags *dispatchers.ParsedFlags) error {
	return prune(args, flags, DefaultDeps())
}

func prune(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	keep := 0
	if raw, ok := deps.Get("history_limit"); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			keep = n
		}
	}
	if flags != nil {
		keep = flags.Int("--keep", keep)
	}

	st, err := deps.Open()
	if err != nil {
		return err
	}
	defer st.Close()

	removed, err := st.Prune(keep)
	if err != nil {
		return err
	}

	if removed == 1 {
		_, _ = deps.Println("removed 1 run")
	} else {
		_, _ = deps.Printf("removed %d runs\n", removed)
	}
	return nil
}
