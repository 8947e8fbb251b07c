package controls

import (
	"github.com/cliform-tools/cli/internal/params"
)

// CheckboxControl backs plain booleans. For pure flags the "value" is the
// enabled state itself; there is no separate stored boolean.
type CheckboxControl struct {
	base
	checked bool
}

func newCheckboxControl(p *params.Param, typ params.ParamType, parent Control) *CheckboxControl {
	c := &CheckboxControl{base: newBase(KindCheckbox, p, typ, parent)}
	def := false
	if v, err := typ.Convert(p.DefaultValue(false)); err == nil {
		def, _ = v.(bool)
	}
	if p.IsFlag {
		c.SetEnabled(def)
	} else {
		c.checked = def
	}
	if parent == nil {
		c.SetChangeable(true)
	}
	return c
}

func (c *CheckboxControl) WidgetValue() any {
	if c.param.IsFlag {
		return c.IsEnabled()
	}
	return c.checked
}

func (c *CheckboxControl) SetValue(value any) error {
	if c.param.IsFlag {
		if value == nil {
			return nil
		}
		v, err := c.typ.Convert(value)
		if err != nil {
			return err
		}
		c.SetEnabled(v.(bool))
		return nil
	}
	if value == nil {
		c.checked = false
		return nil
	}
	v, err := c.typ.Convert(value)
	if err != nil {
		return err
	}
	c.checked = v.(bool)
	return nil
}

// Toggle flips the stored boolean (or the enabled state for flags).
func (c *CheckboxControl) Toggle() {
	if c.param.IsFlag {
		c.SetEnabled(!c.IsEnabled())
		return
	}
	c.checked = !c.checked
}

func (c *CheckboxControl) Value() (any, Error) { return resolveValue(c) }

func (c *CheckboxControl) CmdlineFragment() string { return cmdlineFragment(c) }
