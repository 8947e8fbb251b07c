package controls

import (
	"fmt"
	"strings"

	"github.com/cliform-tools/cli/internal/params"
)

// multiBase is the shared composite machinery: ordered, exclusively-owned
// children plus fragment/validity aggregation. Children are never
// registered independently.
type multiBase struct {
	base
	children []Control
}

// Children exposes the ordered child controls (UI navigation needs them).
func (m *multiBase) Children() []Control { return m.children }

func (m *multiBase) WidgetValue() any {
	out := make([]any, len(m.children))
	for i, c := range m.children {
		out[i] = c.WidgetValue()
	}
	return out
}

func (m *multiBase) HandleValid(valid bool) {
	for _, c := range m.children {
		c.HandleValid(valid)
	}
}

func (m *multiBase) IsEmpty() bool {
	if len(m.children) == 0 {
		return true
	}
	for _, c := range m.children {
		if c.IsEmpty() {
			return true
		}
	}
	return false
}

// cmdline renders the flag once followed by every child's fragment with
// duplicate flag prefixes stripped.
func (m *multiBase) cmdline() string {
	opt := m.param.PreferredOpt()
	parts := make([]string, 0, len(m.children))
	for _, c := range m.children {
		frag := strings.TrimSpace(strings.ReplaceAll(c.CmdlineFragment(), opt, ""))
		parts = append(parts, frag)
	}
	return fmt.Sprintf("%s %s ", opt, strings.Join(parts, " "))
}

// setFixed applies a sequence to a fixed-arity composite: nil disables,
// anything else must match the declared arity exactly.
func (m *multiBase) setFixed(value any) error {
	if value == nil {
		m.SetEnabled(false)
		return nil
	}
	seq, err := params.AsSequence(value)
	if err != nil {
		return err
	}
	m.SetEnabled(len(seq) > 0)
	if len(seq) != m.param.NArgs {
		return arityError(m.param.NArgs, len(seq))
	}
	for i, c := range m.children {
		if err := c.SetValue(seq[i]); err != nil {
			return err
		}
	}
	return nil
}

// arityError states expected vs actual count with correct grammar.
func arityError(want, got int) error {
	if got == 1 {
		return fmt.Errorf("Takes %d values but 1 was given.", want)
	}
	return fmt.Errorf("Takes %d values but %d were given.", want, got)
}

// initFromEnv seeds a top-level composite from its environment variable
// (split on the platform path-list separator) or its declared default.
func (m *multiBase) initFromEnv(self Control) {
	if m.parent != nil {
		return
	}
	if seq, ok := m.param.EnvVarSequence(); ok {
		_ = self.SetValue(seq)
		return
	}
	if def := m.param.DefaultValue(nil); def != nil {
		_ = self.SetValue(def)
	}
}
