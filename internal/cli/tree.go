// Package cli declares the cliform command tree.
package cli

import (
	"github.com/cliform-tools/cli/internal/actions"
	actionscodec "github.com/cliform-tools/cli/internal/actions/codec"
	actionsconfig "github.com/cliform-tools/cli/internal/actions/config"
	actionsform "github.com/cliform-tools/cli/internal/actions/form"
	actionshistory "github.com/cliform-tools/cli/internal/actions/history"
	"github.com/cliform-tools/cli/internal/dispatchers"
)

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "cliform",
		Summary: "Interactive forms for command-line tools",
		Usage:   "cliform <command> [flags]",
		Flags:   RootFlags,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "form",
		Parent:  root,
		Summary: "Open the interactive form",
		Usage:   "cliform form [--module <path>]",
		Description: "Opens a terminal form over the bundled command tree. Every parameter\n" +
			"becomes an editable control; runs execute in the background and can be\n" +
			"stopped, and the control state round-trips through command strings.",
		Flags:    ModuleFlags,
		Action:   actionsform.Launch,
		Category: dispatchers.CategoryForm,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "export",
		Parent:  root,
		Summary: "Print the command line for a command",
		Usage:   "cliform export [command...] [--module <path>]",
		Args: []dispatchers.ArgSpec{
			{Name: "command", Description: "Command path below the root", Required: false},
		},
		Flags:    ModuleFlags,
		Action:   actionscodec.Export,
		Category: dispatchers.CategoryCodec,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "import",
		Parent:  root,
		Summary: "Parse a command line and echo its canonical form",
		Usage:   "cliform import <cmdline> [--module <path>]",
		Args: []dispatchers.ArgSpec{
			{Name: "cmdline", Description: "Command line to parse (quote it)", Required: true},
		},
		Flags:    ModuleFlags,
		Action:   actionscodec.Import,
		Category: dispatchers.CategoryCodec,
	})

	history := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "history",
		Parent:  root,
		Summary: "Inspect past runs",
		Usage:   "cliform history <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   history,
		Summary:  "Show recorded runs",
		Usage:    "cliform history list [flags]",
		Flags:    HistoryListFlags,
		Action:   actionshistory.List,
		Category: dispatchers.CategoryHistory,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "prune",
		Parent:   history,
		Summary:  "Drop all but the newest runs",
		Usage:    "cliform history prune [--keep <n>]",
		Flags:    HistoryPruneFlags,
		Action:   actionshistory.Prune,
		Category: dispatchers.CategoryHistory,
	})

	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "cliform config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "get",
		Parent:  config,
		Summary: "Get a config value",
		Usage:   "cliform config get <key>",
		Args: []dispatchers.ArgSpec{
			{Name: "key", Description: "Configuration key to read", Required: true},
		},
		Action:   actionsconfig.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "set",
		Parent:  config,
		Summary: "Set a config value",
		Usage:   "cliform config set <key> <value>",
		Args: []dispatchers.ArgSpec{
			{Name: "key", Description: "Configuration key to write", Required: true},
			{Name: "value", Description: "Value to assign", Required: true},
		},
		Action:   actionsconfig.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "unset",
		Parent:  config,
		Summary: "Remove a config value",
		Usage:   "cliform config unset <key>",
		Args: []dispatchers.ArgSpec{
			{Name: "key", Description: "Configuration key to remove", Required: false},
		},
		Flags:    ConfigUnsetFlags,
		Action:   actionsconfig.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "Show all config values",
		Usage:    "cliform config list",
		Action:   actionsconfig.List,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "version",
		Parent:  root,
		Summary: "Show cliform version",
		Usage:   "cliform version",
		Action:  actions.ShowVersion,
	})

	dispatchers.Group(dispatchers.GroupSpec{
		Name:    "help",
		Parent:  root,
		Summary: "Show help for a command",
		Usage:   "cliform help [command]",
	})

	return root
}
