package controls

import (
	"reflect"

	"github.com/cliform-tools/cli/internal/params"
)

// ConfirmPairControl holds two independently constructed controls of the
// underlying type; their fully resolved values must compare equal.
type ConfirmPairControl struct {
	base
	field   Control
	confirm Control
}

func newConfirmPairControl(p *params.Param, typ params.ParamType, parent Control, o *Options) (*ConfirmPairControl, error) {
	c := &ConfirmPairControl{base: newBase(KindConfirmPair, p, typ, parent)}

	member := *p
	member.ConfirmationPrompt = false
	field, err := build(&member, typ, c, o)
	if err != nil {
		return nil, err
	}
	confirm, err := build(&member, typ, c, o)
	if err != nil {
		return nil, err
	}
	c.field, c.confirm = field, confirm

	if parent == nil {
		if def := p.DefaultValue(nil); def != nil {
			_ = c.SetValue(def)
		}
	}
	return c, nil
}

// Field is the primary input control.
func (c *ConfirmPairControl) Field() Control { return c.field }

// ConfirmField is the second input whose value must match.
func (c *ConfirmPairControl) ConfirmField() Control { return c.confirm }

func (c *ConfirmPairControl) WidgetValue() any { return c.field.WidgetValue() }

// SetValue seeds both inputs; nil leaves them untouched.
func (c *ConfirmPairControl) SetValue(value any) error {
	if value == nil {
		return nil
	}
	if err := c.field.SetValue(value); err != nil {
		return err
	}
	return c.confirm.SetValue(value)
}

func (c *ConfirmPairControl) HandleValid(valid bool) {
	c.field.HandleValid(valid)
	c.confirm.HandleValid(valid)
}

func (c *ConfirmPairControl) IsEmpty() bool { return c.field.IsEmpty() }

// Value resolves both inputs. A child's own conversion or callback error
// surfaces before the equality check is ever reached.
func (c *ConfirmPairControl) Value() (any, Error) {
	v1, err1 := c.field.Value()
	v2, err2 := c.confirm.Value()
	if err1.IsError() {
		return nil, err1
	}
	if err2.IsError() {
		return nil, err2
	}
	if !reflect.DeepEqual(v1, v2) {
		c.HandleValid(false)
		return nil, Error{Kind: ConfirmationInputNotEqualError, Trigger: c.param.Name}
	}
	c.HandleValid(true)
	return v1, Ok
}

func (c *ConfirmPairControl) CmdlineFragment() string { return c.field.CmdlineFragment() }
