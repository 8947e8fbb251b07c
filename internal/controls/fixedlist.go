package controls

import (
	"github.com/cliform-tools/cli/internal/params"
)

// FixedListControl is the nargs>1 homogeneous composite: a fixed count of
// children of the same type, each converted independently.
type FixedListControl struct {
	multiBase
}

func newFixedListControl(p *params.Param, typ params.ParamType, parent Control, o *Options) (*FixedListControl, error) {
	c := &FixedListControl{multiBase{base: newBase(KindFixedList, p, typ, parent)}}

	for i := 0; i < p.NArgs; i++ {
		member := *p
		member.NArgs = 1
		member.Multiple = false
		child, err := build(&member, typ, c, o)
		if err != nil {
			return nil, err
		}
		c.children = append(c.children, child)
	}

	c.initFromEnv(c)
	return c, nil
}

func (c *FixedListControl) SetValue(value any) error { return c.setFixed(value) }

func (c *FixedListControl) Value() (any, Error) { return resolveValue(c) }

func (c *FixedListControl) CmdlineFragment() string { return c.cmdline() }
