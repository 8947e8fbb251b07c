package form

import (
	"io"
	"strconv"

	"github.com/cliform-tools/cli/internal/app"
	"github.com/cliform-tools/cli/internal/config"
	"github.com/cliform-tools/cli/internal/log"
	"github.com/cliform-tools/cli/internal/paths"
	"github.com/cliform-tools/cli/internal/store"
	formui "github.com/cliform-tools/cli/internal/ui/form"
)

type Deps struct {
	NewSession func(out io.Writer, modulePath string) (*app.Session, error)
	OpenStore  func() (*store.Store, error)
	Get        func(string) (string, bool)
	RunForm    func(formui.Options) error
}

func DefaultDeps() Deps {
	return Deps{
		NewSession: app.NewSession,
		OpenStore:  func() (*store.Store, error) { return store.New(paths.HistoryDBPath()) },
		Get:        config.Get,
		RunForm:    formui.Run,
	}
}

// historyLimit reads the configured prune threshold, 0 meaning unlimited.
func historyLimit(get func(string) (string, bool)) int {
	raw, ok := get("history_limit")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Warn("form: invalid history_limit %q", raw)
		return 0
	}
	return n
}
