package params

import (
	"errors"
	"os"
	"strings"
)

// Protocol signals a validation callback may return instead of a plain
// error. Abort cancels the whole run silently-by-convention; Exit mirrors
// an explicit exit request from the callback chain.
var (
	ErrAbort = errors.New("aborted")
	ErrExit  = errors.New("exit")
)

// Callback validates or rewrites a converted parameter value. Callbacks
// run in declaration order; each receives the previous callback's result.
type Callback func(p *Param, value any) (any, error)

// Param describes one option or argument of a command.
type Param struct {
	Name     string
	Opts     []string // flag spellings ("--p", "-p"); empty for positional arguments
	Type     ParamType
	Required bool
	Multiple bool
	NArgs    int

	// Default is the declared default value; DefaultFunc, when set, wins
	// and is invoked at resolution time. A nil Default with a nil
	// DefaultFunc means "no default".
	Default     any
	DefaultFunc func() any

	EnvVar string

	IsFlag    bool
	FlagValue string // non-empty turns a flag into a feature-switch member
	IsCount   bool

	// ConfirmationPrompt pairs the control with a second identical one
	// whose value must match. Prompt on a flag turns it into a yes/no
	// dialog asked right before execution.
	ConfirmationPrompt bool
	Prompt             string

	Help        string
	Metavar     []string
	Callbacks   []Callback
	ExposeValue bool
	IsArgument  bool
}

// EffectiveRequired reports whether the control backing this parameter
// must produce a value: arguments are always required.
func (p *Param) EffectiveRequired() bool {
	return p.Required || p.IsArgument
}

// HasDefault reports whether an explicit default was declared.
func (p *Param) HasDefault() bool {
	return p.DefaultFunc != nil || p.Default != nil
}

// DefaultValue materializes the declared default, or alt when unset.
func (p *Param) DefaultValue(alt any) any {
	if p.DefaultFunc != nil {
		if v := p.DefaultFunc(); v != nil {
			return v
		}
		return alt
	}
	if p.Default != nil {
		return p.Default
	}
	return alt
}

// TruthyDefault reports whether the declared default evaluates to true.
// Used when deciding the initial enabled state of flag controls.
func (p *Param) TruthyDefault() bool {
	switch v := p.DefaultValue(nil).(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	}
	return true
}

// PreferredOpt returns the longest long-form flag spelling, which is what
// exported command lines use. Positional arguments have none.
func (p *Param) PreferredOpt() string {
	long := ""
	for _, o := range p.Opts {
		if len(o) > len(long) {
			long = o
		}
	}
	if strings.HasPrefix(long, "-") {
		return long
	}
	return ""
}

// ResolveEnvVar reads the parameter's environment variable, if declared
// and set. The second result reports presence.
func (p *Param) ResolveEnvVar() (string, bool) {
	if p.EnvVar == "" {
		return "", false
	}
	v, ok := os.LookupEnv(p.EnvVar)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// EnvVarSequence splits the environment value on the platform path-list
// separator, the shape composite and repeatable controls consume.
func (p *Param) EnvVarSequence() ([]string, bool) {
	v, ok := p.ResolveEnvVar()
	if !ok {
		return nil, false
	}
	return strings.Split(v, string(os.PathListSeparator)), true
}

// ProcessValue runs the callback chain over a converted value.
func (p *Param) ProcessValue(value any) (any, error) {
	var err error
	for _, cb := range p.Callbacks {
		value, err = cb(p, value)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// ParamTypeName names the parameter kind for required-error messages.
func (p *Param) ParamTypeName() string {
	if p.IsArgument {
		return "argument"
	}
	return "option"
}
