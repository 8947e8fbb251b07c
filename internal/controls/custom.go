package controls

import (
	"github.com/cliform-tools/cli/internal/params"
)

// CustomBinding supplies caller-provided accessors for a user-defined
// control. The caller closes over whatever state backs the control.
type CustomBinding struct {
	Get func() any
	Set func(value any) error
}

// CustomControl routes raw-value access through a CustomBinding while the
// standard pipeline still handles conversion and callbacks.
type CustomControl struct {
	base
	binding CustomBinding
}

func newCustomControl(p *params.Param, typ params.ParamType, parent Control, binding CustomBinding) *CustomControl {
	return &CustomControl{base: newBase(KindCustom, p, typ, parent), binding: binding}
}

func (c *CustomControl) WidgetValue() any { return c.binding.Get() }

func (c *CustomControl) SetValue(value any) error {
	if value == nil {
		c.SetEnabled(false)
		return nil
	}
	if err := c.binding.Set(value); err != nil {
		return err
	}
	c.SetEnabled(true)
	return nil
}

func (c *CustomControl) Value() (any, Error) { return resolveValue(c) }

func (c *CustomControl) CmdlineFragment() string { return cmdlineFragment(c) }
