package codec

import (
	"io"

	"github.com/cliform-tools/cli/internal/app"
	"github.com/cliform-tools/cli/internal/ui"
)

type Deps struct {
	NewSession func(out io.Writer, modulePath string) (*app.Session, error)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		NewSession: app.NewSession,
		Printf:     ui.Printf,
		Println:    ui.Println,
	}
}
