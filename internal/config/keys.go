package config

// Key describes one known configuration entry.
type Key struct {
	Name        string
	Default     string
	Help        string
	Hidden      bool // internal use, never written to the file
	HideIfEmpty bool // written commented-out (optional override)
}

// Keys lists every recognized configuration entry in file order.
var Keys = []Key{
	{Name: "theme", Default: "default", Help: "color theme (auto-detects -dark/-light)"},
	{Name: "invocation_command", Default: "go run", Help: "prefix for exported path-identity command lines"},
	{Name: "enable_log", Default: "true", Help: "write a debug log file"},
	{Name: "log_level", Default: "warn", Help: "debug, info, warn or error"},
	{Name: "history", Default: "true", Help: "record executed command lines"},
	{Name: "history_limit", Default: "200", Help: "invocations kept before pruning"},
	{Name: "pager", Default: "less -FRSX", Help: "pager command for long output"},
	{Name: "display_date", Default: "", Help: "date preset or Go layout", HideIfEmpty: true},
	{Name: "display_time", Default: "24h", Help: "12h or 24h clock"},
	{Name: "color_success", Default: "", HideIfEmpty: true},
	{Name: "color_warning", Default: "", HideIfEmpty: true},
	{Name: "color_error", Default: "", HideIfEmpty: true},
	{Name: "color_info", Default: "", HideIfEmpty: true},
	{Name: "color_muted", Default: "", HideIfEmpty: true},
	{Name: "color_header", Default: "", HideIfEmpty: true},
}

// KnownKey reports whether name is a recognized configuration entry.
func KnownKey(name string) bool {
	for _, k := range Keys {
		if k.Name == name {
			return true
		}
	}
	return false
}
