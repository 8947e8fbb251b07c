package controls

import (
	"fmt"
	"strings"

	"github.com/cliform-tools/cli/internal/params"
)

// SelectControl is a single-select over a choice type.
type SelectControl struct {
	base
	current string
}

func newSelectControl(p *params.Param, typ params.ParamType, parent Control) *SelectControl {
	c := &SelectControl{base: newBase(KindSelect, p, typ, parent)}
	if parent == nil && p.HasDefault() {
		_ = c.SetValue(p.DefaultValue(nil))
	}
	return c
}

// Choices lists the selectable values.
func (c *SelectControl) Choices() []string {
	if t, ok := c.typ.(params.ChoiceType); ok {
		return t.Choices
	}
	return nil
}

func (c *SelectControl) WidgetValue() any { return c.current }

func (c *SelectControl) SetValue(value any) error {
	if value == nil {
		c.SetEnabled(false)
		return nil
	}
	v, err := c.typ.Convert(value)
	if err != nil {
		return err
	}
	c.current = fmt.Sprintf("%v", v)
	c.SetEnabled(true)
	return nil
}

func (c *SelectControl) IsEmpty() bool { return c.current == "" }

func (c *SelectControl) Value() (any, Error) { return resolveValue(c) }

func (c *SelectControl) CmdlineFragment() string { return cmdlineFragment(c) }

// MultiSelectControl is a multi-select over a choice type with
// multiple=true. The flag is repeated per selected value on export.
type MultiSelectControl struct {
	base
	selected []string
}

func newMultiSelectControl(p *params.Param, typ params.ParamType, parent Control) *MultiSelectControl {
	c := &MultiSelectControl{base: newBase(KindMultiSelect, p, typ, parent)}
	if parent == nil {
		_ = c.SetValue(p.DefaultValue([]any{}))
	}
	return c
}

// Choices lists the selectable values.
func (c *MultiSelectControl) Choices() []string {
	if t, ok := c.typ.(params.ChoiceType); ok {
		return t.Choices
	}
	return nil
}

func (c *MultiSelectControl) WidgetValue() any { return c.selected }

func (c *MultiSelectControl) SetValue(value any) error {
	if value == nil {
		c.selected = nil
		return nil
	}
	seq, err := params.AsSequence(value)
	if err != nil {
		return err
	}
	out := make([]string, 0, len(seq))
	for _, elem := range seq {
		v, err := c.typ.Convert(elem)
		if err != nil {
			return err
		}
		out = append(out, fmt.Sprintf("%v", v))
	}
	c.selected = out
	return nil
}

// ToggleChoice adds or removes one choice from the selection, preserving
// the declared choice order.
func (c *MultiSelectControl) ToggleChoice(choice string) {
	for i, s := range c.selected {
		if s == choice {
			c.selected = append(c.selected[:i], c.selected[i+1:]...)
			return
		}
	}
	ordered := make([]string, 0, len(c.selected)+1)
	for _, ch := range c.Choices() {
		if ch == choice || contains(c.selected, ch) {
			ordered = append(ordered, ch)
		}
	}
	c.selected = ordered
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func (c *MultiSelectControl) IsEmpty() bool { return len(c.selected) == 0 }

func (c *MultiSelectControl) Value() (any, Error) { return resolveValue(c) }

func (c *MultiSelectControl) CmdlineFragment() string {
	if len(c.selected) == 0 {
		return ""
	}
	opt := c.param.PreferredOpt()
	var b strings.Builder
	for _, v := range c.selected {
		b.WriteString(opt)
		b.WriteString(" ")
		b.WriteString(ShellQuote(v))
		b.WriteString(" ")
	}
	return b.String()
}
