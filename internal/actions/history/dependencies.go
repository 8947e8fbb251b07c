package history

import (
	"github.com/cliform-tools/cli/internal/config"
	"github.com/cliform-tools/cli/internal/paths"
	"github.com/cliform-tools/cli/internal/store"
	"github.com/cliform-tools/cli/internal/ui"
)

type Deps struct {
	Open    func() (*store.Store, error)
	Get     func(string) (string, bool)
	Pager   func(string)
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Open:    func() (*store.Store, error) { return store.New(paths.HistoryDBPath()) },
		Get:     config.Get,
		Pager:   ui.Pager,
		Printf:  ui.Printf,
		Println: ui.Println,
	}
}
