// Package controls binds command parameters to interactive controls: it
// resolves a declared type to a control variant, validates and converts
// live values, and renders raw state as command-line fragments.
package controls

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cliform-tools/cli/internal/params"
)

// Control is the binding between one parameter and its interactive
// representation. Implementations hold raw state; Value runs the full
// validation pipeline over it.
type Control interface {
	Kind() Kind
	Param() *params.Param

	// ValueType is the type raw values convert through. For members of a
	// composite this differs from Param().Type.
	ValueType() params.ParamType

	// WidgetValue returns the current raw content, unvalidated.
	WidgetValue() any

	// SetValue programmatically replaces the raw content. It accepts the
	// type's native representation; nil disables the control instead of
	// erroring. Fixed composites reject sequences of the wrong length.
	SetValue(value any) error

	// Value converts, validates and runs the callback chain, returning
	// either a typed value or a populated Error.
	Value() (any, Error)

	// CmdlineFragment renders the raw value as a shell-token fragment
	// prefixed with the parameter's preferred flag spelling.
	CmdlineFragment() string

	// HandleValid is the visual feedback hook; composites propagate it.
	HandleValid(valid bool)

	IsEmpty() bool
	IsEnabled() bool
	CanToggle() bool
	SetEnabled(enabled bool)
	SetChangeable(changeable bool)
	Parent() Control
}

// base carries the state every control shares. Concrete controls embed it.
type base struct {
	kind       Kind
	param      *params.Param
	typ        params.ParamType
	parent     Control
	enabled    bool
	changeable bool
	valid      bool
}

func newBase(kind Kind, p *params.Param, typ params.ParamType, parent Control) base {
	return base{
		kind:       kind,
		param:      p,
		typ:        typ,
		parent:     parent,
		enabled:    true,
		changeable: true,
		valid:      true,
	}
}

func (b *base) Kind() Kind                  { return b.kind }
func (b *base) Param() *params.Param        { return b.param }
func (b *base) ValueType() params.ParamType { return b.typ }
func (b *base) Parent() Control             { return b.parent }
func (b *base) IsEnabled() bool             { return b.enabled }
func (b *base) CanToggle() bool             { return b.changeable }
func (b *base) IsEmpty() bool               { return false }
func (b *base) HandleValid(valid bool)      { b.valid = valid }

func (b *base) SetChangeable(changeable bool) { b.changeable = changeable }

// SetEnabled flips the enabled state. Enabling a composite member also
// force-enables its parent chain.
func (b *base) SetEnabled(enabled bool) {
	b.enabled = enabled
	if enabled && b.parent != nil && !b.parent.IsEnabled() {
		b.parent.SetEnabled(true)
	}
}

// resolveValue is the shared per-control pipeline: required/disabled
// check, conversion, then the callback chain.
func resolveValue(c Control) (any, Error) {
	p := c.Param()
	if p.EffectiveRequired() && !c.IsEnabled() {
		c.HandleValid(false)
		return nil, Error{Kind: RequiredError, Trigger: p.Name, Detail: p.ParamTypeName()}
	}

	raw := c.WidgetValue()
	_, isTuple := c.ValueType().(params.TupleType)
	elementwise := p.Multiple || (p.NArgs > 1 && !isTuple)

	var converted any
	if elementwise {
		seq, err := params.AsSequence(raw)
		if err != nil {
			c.HandleValid(false)
			return nil, Error{Kind: ConvertingError, Trigger: p.Name, Detail: err.Error()}
		}
		out := make([]any, 0, len(seq))
		for _, elem := range seq {
			v, err := c.ValueType().Convert(elem)
			if err != nil {
				c.HandleValid(false)
				return nil, Error{Kind: ConvertingError, Trigger: p.Name, Detail: err.Error()}
			}
			out = append(out, v)
		}
		converted = out
	} else {
		v, err := c.ValueType().Convert(raw)
		if err != nil {
			c.HandleValid(false)
			return nil, Error{Kind: ConvertingError, Trigger: p.Name, Detail: err.Error()}
		}
		converted = v
	}

	return runCallbacks(c, converted)
}

// runCallbacks maps the three callback failure modes onto their error
// kinds and hands back whatever the chain returns on success.
func runCallbacks(c Control, value any) (any, Error) {
	p := c.Param()
	v, err := p.ProcessValue(value)
	switch {
	case err == nil:
		c.HandleValid(true)
		return v, Ok
	case errors.Is(err, params.ErrAbort):
		return nil, Error{Kind: AbortedError, Trigger: p.Name}
	case errors.Is(err, params.ErrExit):
		return nil, Error{Kind: ExitError, Trigger: p.Name}
	default:
		c.HandleValid(false)
		return nil, Error{Kind: ProcessingValueError, Trigger: p.Name, Detail: err.Error()}
	}
}

// cmdlineFragment is the default raw-value rendering: bare flag for
// flags, the flag repeated N times for counters, otherwise flag plus the
// quoted value.
func cmdlineFragment(c Control) string {
	p := c.Param()
	if p.IsFlag {
		return p.PreferredOpt() + " "
	}
	if p.IsCount {
		return strings.Repeat(p.PreferredOpt()+" ", countValue(c.WidgetValue()))
	}
	frag := fmt.Sprintf("%s %s ", p.PreferredOpt(), ShellQuote(fmt.Sprintf("%v", c.WidgetValue())))
	return strings.TrimLeft(frag, " ")
}

func countValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

var safeToken = regexp.MustCompile(`^[a-zA-Z0-9_@%+=:,./-]+$`)

// ShellQuote quotes a token for POSIX shells, mirroring shlex.quote.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if safeToken.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
