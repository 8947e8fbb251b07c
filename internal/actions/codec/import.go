package codec

import (
	"errors"
	"io"
	"strings"

	codecpkg "github.com/cliform-tools/cli/internal/codec"
	"github.com/cliform-tools/cli/internal/dispatchers"
	"github.com/cliform-tools/cli/internal/usage"
)

// Import parses a command line against the bundled tree, applies it onto
// the controls and echoes the canonical round-tripped form.
func Import(args []string, flags *dispatchers.ParsedFlags) error {
	return importCmd(args, flags, DefaultDeps())
}

func importCmd(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("cmdline")
	}
	cmdline := strings.Join(args, " ")

	modulePath := ""
	if flags != nil {
		modulePath = flags.String("--module", "")
	}

	sess, err := deps.NewSession(io.Discard, modulePath)
	if err != nil {
		return err
	}

	hierarchy, cerr := codecpkg.Import(sess.Registry, sess.Root, cmdline, sess.Identity)
	if cerr.IsError() {
		if msg := cerr.Message(); msg != "" {
			return errors.New(msg)
		}
		return errors.New("import aborted")
	}

	_, _ = deps.Printf("command: %s\n", strings.Join(hierarchy, " "))
	_, _ = deps.Println(codecpkg.Export(sess.Registry, sess.Root, hierarchy, sess.Identity))
	return nil
}
