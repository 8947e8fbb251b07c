package controls

import (
	"fmt"
	"time"

	"github.com/cliform-tools/cli/internal/params"
)

// DateTimeControl is a structured timestamp control. The display format
// is user-selectable among the type's declared formats and defaults to
// the last one.
type DateTimeControl struct {
	base
	value         time.Time
	displayFormat string
}

func newDateTimeControl(p *params.Param, typ params.ParamType, parent Control) *DateTimeControl {
	c := &DateTimeControl{base: newBase(KindDateTime, p, typ, parent)}
	if t, ok := typ.(params.DateTimeType); ok {
		c.displayFormat = t.DisplayFormat()
	} else {
		c.displayFormat = params.DefaultDateTimeFormats[len(params.DefaultDateTimeFormats)-1]
	}
	if parent == nil && p.HasDefault() {
		_ = c.SetValue(p.DefaultValue(nil))
	}
	return c
}

// Formats lists the selectable display formats.
func (c *DateTimeControl) Formats() []string {
	if t, ok := c.typ.(params.DateTimeType); ok && len(t.Formats) > 0 {
		return t.Formats
	}
	return params.DefaultDateTimeFormats
}

// SetDisplayFormat switches the rendering format. Unknown formats are
// ignored.
func (c *DateTimeControl) SetDisplayFormat(format string) {
	for _, f := range c.Formats() {
		if f == format {
			c.displayFormat = format
			return
		}
	}
}

// DisplayFormat is the format exports and the UI render with.
func (c *DateTimeControl) DisplayFormat() string { return c.displayFormat }

func (c *DateTimeControl) WidgetValue() any { return c.value }

func (c *DateTimeControl) SetValue(value any) error {
	if value == nil {
		c.SetEnabled(false)
		return nil
	}
	v, err := c.typ.Convert(value)
	if err != nil {
		return err
	}
	c.value = v.(time.Time)
	c.SetEnabled(true)
	return nil
}

func (c *DateTimeControl) IsEmpty() bool { return c.value.IsZero() }

func (c *DateTimeControl) Value() (any, Error) { return resolveValue(c) }

func (c *DateTimeControl) CmdlineFragment() string {
	rendered := c.value.Format(c.displayFormat)
	return fmt.Sprintf("%s %s ", c.param.PreferredOpt(), ShellQuote(rendered))
}
