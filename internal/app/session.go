// Package app assembles the pieces a cliform invocation works with: the
// bundled command tree, its bound control registry and the identity used
// when command lines are exported or imported.
package app

import (
	"io"

	"github.com/cliform-tools/cli/internal/binding"
	"github.com/cliform-tools/cli/internal/codec"
	"github.com/cliform-tools/cli/internal/config"
	"github.com/cliform-tools/cli/internal/controls"
	"github.com/cliform-tools/cli/internal/params"
	"github.com/cliform-tools/cli/internal/showcase"
)

// Session ties one command tree to its control registry and the codec
// identity used for command-string export and import.
type Session struct {
	Root     *params.Command
	Registry *binding.Registry
	Identity codec.Identity
}

// NewSession builds the bundled demo tree, binds every parameter to a
// control and picks the codec identity. Command actions write to out.
//
// An empty modulePath selects entry-point identity under the root
// command's name; anything else selects path identity with the
// configured invocation command.
func NewSession(out io.Writer, modulePath string) (*Session, error) {
	root := showcase.New(out)
	reg, err := binding.Build(root, &controls.Options{})
	if err != nil {
		return nil, err
	}

	id := codec.EntryPointIdentity(root.Name)
	if modulePath != "" {
		id = codec.PathIdentity(modulePath)
		if cmd, ok := config.Get("invocation_command"); ok && cmd != "" {
			id.Invocation = cmd
		}
	}

	return &Session{Root: root, Registry: reg, Identity: id}, nil
}
