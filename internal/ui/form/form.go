// Package form renders a command tree as an interactive terminal form.
// Every parameter shows up as an editable control; the selected command
// hierarchy can be validated and run without leaving the form, and the
// live control state round-trips through command strings.
package form

import (
	"errors"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/cliform-tools/cli/internal/binding"
	"github.com/cliform-tools/cli/internal/codec"
	"github.com/cliform-tools/cli/internal/params"
)

// Options wires the form to its surroundings.
type Options struct {
	Root     *params.Command
	Registry *binding.Registry
	Identity codec.Identity

	// Output is the sink command actions write to. When the tree's
	// actions were built around an Output, pass the same one here so
	// their prints land in the output panel.
	Output *Output

	// Record, when set, is called after each finished run with the
	// executed hierarchy, the exported command line and the outcome.
	Record func(hierarchy []string, cmdline string, failed, stopped bool)
}

// Run launches the form and blocks until the user leaves it.
func Run(opts Options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the form requires an interactive terminal")
	}

	m := newModel(opts)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // harmless, but stabilizes input
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	fm := final.(model)
	fm.exec.Stop()

	return nil
}

// displayPath renders a registry key for the sidebar: the root name alone
// for the root entry, indented subcommand names below it.
func displayPath(key string) string {
	parts := strings.Split(key, binding.PathSep)
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Repeat("  ", len(parts)-1) + parts[len(parts)-1]
}
