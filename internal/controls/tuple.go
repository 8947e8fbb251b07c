package controls

import (
	"fmt"

	"github.com/cliform-tools/cli/internal/params"
)

// TupleControl is a fixed heterogeneous composite: one child per declared
// member type, built recursively with arity forced to one.
type TupleControl struct {
	multiBase
}

func newTupleControl(p *params.Param, typ params.ParamType, parent Control, o *Options) (*TupleControl, error) {
	tt, ok := typ.(params.TupleType)
	if !ok {
		panic(fmt.Sprintf("controls: tuple control built from %T", typ))
	}
	c := &TupleControl{multiBase{base: newBase(KindTuple, p, typ, parent)}}

	for i, memberType := range tt.Types {
		if len(p.Metavar) > 0 && i >= len(p.Metavar) {
			panic(fmt.Sprintf("controls: metavar of parameter %q is shorter than its tuple", p.Name))
		}
		member := *p
		member.NArgs = 1
		member.Multiple = false
		child, err := build(&member, memberType, c, o)
		if err != nil {
			return nil, err
		}
		c.children = append(c.children, child)
	}

	c.initFromEnv(c)
	return c, nil
}

func (c *TupleControl) SetValue(value any) error { return c.setFixed(value) }

// Value converts the whole child sequence through the tuple type, then
// runs the callback chain.
func (c *TupleControl) Value() (any, Error) { return resolveValue(c) }

func (c *TupleControl) CmdlineFragment() string { return c.cmdline() }
