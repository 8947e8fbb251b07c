package controls

import (
	"fmt"

	"github.com/cliform-tools/cli/internal/params"
)

// TextControl is the fallback control: a free-form text entry whose raw
// string is handed to the declared type's conversion at resolution time.
// It also backs string and user-defined types.
type TextControl struct {
	base
	text string
}

func newTextControl(kind Kind, p *params.Param, typ params.ParamType, parent Control) *TextControl {
	c := &TextControl{base: newBase(kind, p, typ, parent)}
	if parent == nil {
		if env, ok := p.ResolveEnvVar(); ok {
			_ = c.SetValue(env)
		} else {
			_ = c.SetValue(p.DefaultValue(""))
		}
	}
	return c
}

func (c *TextControl) WidgetValue() any { return c.text }

func (c *TextControl) SetValue(value any) error {
	if value == nil {
		c.SetEnabled(false)
		return nil
	}
	if s, ok := value.(string); ok {
		c.text = s
	} else {
		c.text = fmt.Sprintf("%v", value)
	}
	c.SetEnabled(true)
	return nil
}

func (c *TextControl) IsEmpty() bool { return c.text == "" }

func (c *TextControl) Value() (any, Error) { return resolveValue(c) }

func (c *TextControl) CmdlineFragment() string { return cmdlineFragment(c) }
