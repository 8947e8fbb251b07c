package codec

import (
	"io"
	"strings"

	"github.com/cliform-tools/cli/internal/binding"
	codecpkg "github.com/cliform-tools/cli/internal/codec"
	"github.com/cliform-tools/cli/internal/dispatchers"
	"github.com/cliform-tools/cli/internal/usage"
)

// Export prints the command line for one command of the bundled tree,
// rendered from the declared defaults.
func Export(args []string, flags *dispatchers.ParsedFlags) error {
	return export(args, flags, DefaultDeps())
}

func export(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	modulePath := ""
	if flags != nil {
		modulePath = flags.String("--module", "")
	}

	sess, err := deps.NewSession(io.Discard, modulePath)
	if err != nil {
		return err
	}

	hierarchy := append([]string{sess.Root.Name}, args...)
	key := binding.PathKey(hierarchy)
	if !sess.Registry.HasPath(key) {
		return usage.UnknownCommand(strings.Join(args, " "))
	}

	line := codecpkg.Export(sess.Registry, sess.Root, hierarchy, sess.Identity)
	_, _ = deps.Println(line)
	return nil
}
