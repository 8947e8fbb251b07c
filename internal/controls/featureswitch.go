package controls

import (
	"fmt"

	"github.com/cliform-tools/cli/internal/params"
)

// FeatureSwitchControl collapses a set of boolean flags sharing one
// logical destination into a single choice over their flag values. On
// export it renders the flag spelling of the selected value, keeping the
// command line re-parsable by the real flag set.
type FeatureSwitchControl struct {
	base
	members []*params.Param // the original flag parameters, declaration order
	current string
}

// NewFeatureSwitch builds the collapsed control. synth is the synthesized
// choice parameter the registry tracks; members are the grouped flags.
func NewFeatureSwitch(synth *params.Param, members []*params.Param) *FeatureSwitchControl {
	if len(members) == 0 {
		panic(fmt.Sprintf("controls: feature switch %q has no member flags", synth.Name))
	}
	return &FeatureSwitchControl{
		base:    newBase(KindFeatureSwitch, synth, synth.Type, nil),
		members: members,
	}
}

// Choices lists the member flag values.
func (c *FeatureSwitchControl) Choices() []string {
	out := make([]string, len(c.members))
	for i, m := range c.members {
		out[i] = m.FlagValue
	}
	return out
}

func (c *FeatureSwitchControl) WidgetValue() any { return c.current }

func (c *FeatureSwitchControl) SetValue(value any) error {
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

func (c *FeatureSwitchControl) IsEmpty() bool { return c.current == "" }

func (c *FeatureSwitchControl) Value() (any, Error) { return resolveValue(c) }

// OptFor maps a flag value back to its flag spelling.
func (c *FeatureSwitchControl) OptFor(value string) string {
	for _, m := range c.members {
		if m.FlagValue == value {
			return m.PreferredOpt()
		}
	}
	return ""
}

func (c *FeatureSwitchControl) CmdlineFragment() string {
	opt := c.OptFor(c.current)
	if opt == "" {
		return ""
	}
	return opt + " "
}
