package controls

import (
	"github.com/cliform-tools/cli/internal/params"
)

// Prompter asks the user a yes/no question. The UI layer injects one; a
// nil prompter leaves the last answer in place (tests set it directly).
type Prompter func(prompt string) bool

// ConfirmDialogControl backs boolean flags carrying a prompt: the value
// is obtained by asking at resolution time, not from a persistent widget.
// The resolution pipeline schedules these after every other control.
type ConfirmDialogControl struct {
	base
	yes      bool
	prompter Prompter
}

func newConfirmDialogControl(p *params.Param, typ params.ParamType, parent Control) *ConfirmDialogControl {
	c := &ConfirmDialogControl{base: newBase(KindConfirmDialog, p, typ, parent)}
	if parent == nil {
		_ = c.SetValue(p.DefaultValue(false))
	}
	return c
}

// SetPrompter installs the modal ask used by Value.
func (c *ConfirmDialogControl) SetPrompter(fn Prompter) { c.prompter = fn }

func (c *ConfirmDialogControl) WidgetValue() any { return c.yes }

func (c *ConfirmDialogControl) SetValue(value any) error {
	if value == nil {
		value = false
	}
	v, err := c.typ.Convert(value)
	if err != nil {
		return err
	}
	c.yes = v.(bool)
	return nil
}

// Value prompts, then runs the regular pipeline over the answer.
func (c *ConfirmDialogControl) Value() (any, Error) {
	if c.prompter != nil {
		c.yes = c.prompter(c.param.Prompt)
	}
	return resolveValue(c)
}

func (c *ConfirmDialogControl) CmdlineFragment() string { return cmdlineFragment(c) }
