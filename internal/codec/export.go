package codec

import (
	"strings"

	"github.com/cliform-tools/cli/internal/binding"
	"github.com/cliform-tools/cli/internal/params"
)

// Export renders the command line for one command path from the current
// control state. Only enabled controls contribute; the root command name
// is dropped for entry points, and for path identities when the root is
// a group, since the shell never spells it out.
func Export(reg *binding.Registry, root *params.Command, hierarchy []string, id Identity) string {
	var fragments strings.Builder
	key := binding.PathKey(hierarchy)
	for _, c := range reg.Controls(key) {
		if !c.IsEnabled() {
			continue
		}
		fragments.WriteString(c.CmdlineFragment())
	}

	names := append([]string{}, hierarchy...)
	if id.EntryPoint {
		names = names[1:]
	} else if root.IsGroup() && len(names) > 0 && names[0] == root.Name {
		names = names[1:]
	}

	pieces := append(id.prefix(), names...)
	if frag := strings.TrimSpace(fragments.String()); frag != "" {
		pieces = append(pieces, frag)
	}
	return strings.Join(pieces, " ")
}
