package controls

import (
	"github.com/cliform-tools/cli/internal/params"
)

// IntControl is a spinner-like control for integers. Bounds mirror the
// declared range so the UI can clamp stepping.
type IntControl struct {
	base
	n int64
}

func newIntControl(p *params.Param, typ params.ParamType, parent Control) *IntControl {
	c := &IntControl{base: newBase(KindIntSpinner, p, typ, parent)}
	if parent == nil && p.HasDefault() {
		_ = c.SetValue(p.DefaultValue(nil))
	}
	return c
}

// Bounds reports the spinner limits derived from the declared range.
func (c *IntControl) Bounds() (min, max int64, hasMin, hasMax bool) {
	if t, ok := c.typ.(params.IntType); ok {
		return t.Min, t.Max, t.HasMin, t.HasMax
	}
	return 0, 0, false, false
}

func (c *IntControl) WidgetValue() any { return c.n }

func (c *IntControl) SetValue(value any) error {
	if value == nil {
		c.SetEnabled(false)
		return nil
	}
	v, err := c.typ.Convert(value)
	if err != nil {
		return err
	}
	c.n = v.(int64)
	c.SetEnabled(true)
	return nil
}

func (c *IntControl) Value() (any, Error) { return resolveValue(c) }

func (c *IntControl) CmdlineFragment() string { return cmdlineFragment(c) }

// Step adjusts the value by delta, respecting the declared bounds.
func (c *IntControl) Step(delta int64) {
	n := c.n + delta
	if min, max, hasMin, hasMax := c.Bounds(); true {
		if hasMin && n < min {
			n = min
		}
		if hasMax && n > max {
			n = max
		}
	}
	c.n = n
}

// FloatControl is the float counterpart of IntControl.
type FloatControl struct {
	base
	f float64
}

func newFloatControl(p *params.Param, typ params.ParamType, parent Control) *FloatControl {
	c := &FloatControl{base: newBase(KindFloatSpinner, p, typ, parent)}
	if parent == nil && p.HasDefault() {
		_ = c.SetValue(p.DefaultValue(nil))
	}
	return c
}

// Bounds reports the spinner limits derived from the declared range.
func (c *FloatControl) Bounds() (min, max float64, hasMin, hasMax bool) {
	if t, ok := c.typ.(params.FloatType); ok {
		return t.Min, t.Max, t.HasMin, t.HasMax
	}
	return 0, 0, false, false
}

func (c *FloatControl) WidgetValue() any { return c.f }

func (c *FloatControl) SetValue(value any) error {
	if value == nil {
		c.SetEnabled(false)
		return nil
	}
	v, err := c.typ.Convert(value)
	if err != nil {
		return err
	}
	c.f = v.(float64)
	c.SetEnabled(true)
	return nil
}

func (c *FloatControl) Value() (any, Error) { return resolveValue(c) }

func (c *FloatControl) CmdlineFragment() string { return cmdlineFragment(c) }
