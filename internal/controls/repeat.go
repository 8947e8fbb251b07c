package controls

import (
	"strings"

	"github.com/cliform-tools/cli/internal/params"
)

// RepeatControl is the multiple=true composite: a dynamically sized list
// of homogeneous children with runtime add/remove.
type RepeatControl struct {
	multiBase
	opts *Options
}

func newRepeatControl(p *params.Param, typ params.ParamType, parent Control, o *Options) (*RepeatControl, error) {
	c := &RepeatControl{
		multiBase: multiBase{base: newBase(KindRepeat, p, typ, parent)},
		opts:      o,
	}
	c.initFromEnv(c)
	if len(c.children) == 0 && c.CanToggle() {
		c.SetEnabled(false)
	}
	return c, nil
}

// AddChild appends a new entry, optionally seeded with value. Adding to a
// disabled control re-enables it.
func (c *RepeatControl) AddChild(value any) (Control, error) {
	member := *c.param
	member.Multiple = false
	child, err := build(&member, c.typ, c, c.opts)
	if err != nil {
		return nil, err
	}
	if len(c.children) == 0 {
		c.HandleValid(true)
	}
	if value != nil {
		if err := child.SetValue(value); err != nil {
			return nil, err
		}
	}
	c.children = append(c.children, child)
	if !c.IsEnabled() && c.CanToggle() {
		c.SetEnabled(true)
	}
	return child, nil
}

// RemoveChild destroys the entry at index i.
func (c *RepeatControl) RemoveChild(i int) {
	if i < 0 || i >= len(c.children) {
		return
	}
	c.children = append(c.children[:i], c.children[i+1:]...)
}

// SetValue grows or shrinks the child list to match the sequence, then
// sets every child. nil clears all entries.
func (c *RepeatControl) SetValue(value any) error {
	seq, err := params.AsSequence(value)
	if err != nil {
		return err
	}
	for len(c.children) > len(seq) {
		c.RemoveChild(len(c.children) - 1)
	}
	for len(c.children) < len(seq) {
		if _, err := c.AddChild(nil); err != nil {
			return err
		}
	}
	for i, child := range c.children {
		if err := child.SetValue(seq[i]); err != nil {
			return err
		}
	}
	return nil
}

// Value aggregates the children: environment variable and default
// materialize entries when none exist, child conversion failures join
// into one error, and an all-empty control still runs the callback chain
// over nil so callbacks can reject "no value" explicitly.
func (c *RepeatControl) Value() (any, Error) {
	valueMissing := false
	if len(c.children) == 0 || !c.IsEnabled() {
		def := c.param.DefaultValue(nil)
		if c.param.EffectiveRequired() && def == nil {
			c.HandleValid(false)
			return nil, Error{Kind: RequiredError, Trigger: c.param.Name, Detail: c.param.ParamTypeName()}
		}
		if seq, ok := c.param.EnvVarSequence(); ok {
			for _, ev := range seq {
				if _, err := c.AddChild(ev); err != nil {
					return nil, Error{Kind: ConvertingError, Trigger: c.param.Name, Detail: err.Error()}
				}
			}
		} else if def != nil {
			defSeq, err := params.AsSequence(def)
			if err != nil {
				return nil, Error{Kind: ConvertingError, Trigger: c.param.Name, Detail: err.Error()}
			}
			for _, v := range defSeq {
				if _, err := c.AddChild(v); err != nil {
					return nil, Error{Kind: ConvertingError, Trigger: c.param.Name, Detail: err.Error()}
				}
			}
		} else {
			valueMissing = true
		}
	}

	var aggregate any
	if !valueMissing {
		values := make([]any, 0, len(c.children))
		var errMessages []string
		for _, child := range c.children {
			v, err := c.typ.Convert(child.WidgetValue())
			if err != nil {
				child.HandleValid(false)
				errMessages = append(errMessages, err.Error())
				continue
			}
			child.HandleValid(true)
			values = append(values, v)
		}
		if len(errMessages) > 0 {
			joined := strings.Join(errMessages, ", ")
			if len(errMessages) > 1 {
				joined = "[" + joined + "]"
			}
			return nil, Error{Kind: ConvertingError, Trigger: c.param.Name, Detail: joined}
		}
		if len(values) > 0 {
			aggregate = values
		}
	}

	return runCallbacks(c, aggregate)
}

// HandleValid falls back to plain state when there is no child to paint.
func (c *RepeatControl) HandleValid(valid bool) {
	if len(c.children) == 0 {
		c.base.HandleValid(valid)
		return
	}
	c.multiBase.HandleValid(valid)
}

// CmdlineFragment concatenates each entry's own fragment; every entry
// repeats the flag.
func (c *RepeatControl) CmdlineFragment() string {
	var b strings.Builder
	for _, child := range c.children {
		b.WriteString(child.CmdlineFragment())
	}
	return b.String()
}
