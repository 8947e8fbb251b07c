package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/cliform-tools/cli/internal/cli"
	"github.com/cliform-tools/cli/internal/config"
	"github.com/cliform-tools/cli/internal/dispatchers"
	"github.com/cliform-tools/cli/internal/log"
	"github.com/cliform-tools/cli/internal/paths"
	"github.com/cliform-tools/cli/internal/ui"
	"github.com/cliform-tools/cli/internal/ui/style"
	"github.com/cliform-tools/cli/internal/usage"
)

func main() {
	rawFlags, commands := extractFlagsAndCommands(os.Args[1:])
	flags := dispatchers.NewParsedFlags(rawFlags)

	initLog()
	defer func() { _ = log.Close() }()

	// Enable styling if stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	cfg, _ := config.GetAll()
	style.Init(enableColor, cfg)

	if flags.Has("--no-pager") {
		ui.DisablePager()
	}
	if pager := flags.String("--pager", ""); pager != "" {
		ui.SetPager(pager)
	}
	if flags.Has("--quiet") || flags.Has("-q") {
		ui.EnableQuiet()
	}

	root := cli.BuildTree()

	res, err := dispatchers.Dispatch(root, commands, flags)

	if err != nil {
		if ue, ok := err.(*usage.Error); ok {
			fmt.Fprintln(os.Stderr, ue.Error())
			os.Exit(ue.GetExitCode())
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		if ue, ok := err.(*usage.Error); ok {
			fmt.Fprintln(os.Stderr, ue.Error())
			os.Exit(ue.GetExitCode())
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	// Exit with non-zero code if resolution requests it (cliform with no args)
	if res.ExitCode != 0 {
		os.Exit(res.ExitCode)
	}
}

func initLog() {
	if enabled, _ := config.Get("enable_log"); enabled != "true" {
		return
	}
	levelRaw, _ := config.Get("log_level")
	if err := log.Init(paths.LogFilePath(), log.ParseLevel(levelRaw)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file: %v\n", err)
	}
}

// valueFlags take their value from the next token; they are folded into
// the --flag=value form the dispatcher reads.
var valueFlags = map[string]bool{
	"--pager":  true,
	"--limit":  true,
	"--path":   true,
	"--since":  true,
	"--keep":   true,
	"--module": true,
}

// extractFlagsAndCommands splits raw arguments into flags and command
// tokens. "-n 3" and bare "-3" are shorthands for "--limit=3".
func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]
		if len(a) == 0 || a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		// Numeric shorthand: -5 means --limit=5
		if n, err := strconv.Atoi(strings.TrimPrefix(a, "-")); err == nil && n > 0 && !strings.HasPrefix(a, "--") {
			flags = append(flags, fmt.Sprintf("--limit=%d", n))
			continue
		}

		name := a
		if idx := strings.Index(a, "="); idx != -1 {
			name = a[:idx]
		}

		canonical := name
		if name == "-n" {
			canonical = "--limit"
		}

		// Fold "--flag value" into "--flag=value" ("-n 3" into "--limit=3")
		if valueFlags[canonical] && name == a && i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
			flags = append(flags, canonical+"="+args[i+1])
			i++
			continue
		}

		flags = append(flags, a)
	}

	return flags, commands
}
