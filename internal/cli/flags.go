package cli

import "github.com/cliform-tools/cli/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--quiet", "-q"},
			Description: "Suppress non-essential output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	ModuleFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--module"},
			ValueHint:   "<path>",
			Description: "Use path identity with this module path for command lines",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	HistoryListFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--limit"},
			ValueHint:   "<n>",
			Description: "Limit number of results",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--path"},
			ValueHint:   "<command>",
			Description: "Filter by command path",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--since"},
			ValueHint:   "<date>",
			Description: "Show runs after date (YYYY-MM-DD)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--failed"},
			Description: "Show only failed runs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	HistoryPruneFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--keep"},
			ValueHint:   "<n>",
			Description: "Keep this many runs (default: history_limit)",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
