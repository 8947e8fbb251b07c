package params

// ActionFunc receives the resolved values for one command. Positional
// values arrive in the order declared by Command.Positional; everything
// else stays in the keyword map.
type ActionFunc func(args []any, kwargs map[string]any) error

// Command is one node of the command tree. A command with subcommands is
// a group; groups may still carry their own parameters and action.
type Command struct {
	Name        string
	Help        string
	Params      []*Param
	Positional  []string // kwarg names the action wants pulled out, in order
	Action      ActionFunc
	Subcommands []*Command
}

// IsGroup reports whether this command has nested subcommands.
func (c *Command) IsGroup() bool { return len(c.Subcommands) > 0 }

// Subcommand finds a direct child by name.
func (c *Command) Subcommand(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// Walk visits the command and all descendants depth-first, handing each
// visit its root-to-node path.
func (c *Command) Walk(fn func(path []string, cmd *Command)) {
	c.walk([]string{c.Name}, fn)
}

func (c *Command) walk(path []string, fn func(path []string, cmd *Command)) {
	fn(path, c)
	for _, sub := range c.Subcommands {
		sub.walk(append(append([]string{}, path...), sub.Name), fn)
	}
}

// OptionSpec carries the fields a caller sets when declaring an option.
type OptionSpec struct {
	Name               string
	Opts               []string
	Type               ParamType
	Required           bool
	Multiple           bool
	NArgs              int
	Default            any
	DefaultFunc        func() any
	EnvVar             string
	IsFlag             bool
	FlagValue          string
	IsCount            bool
	ConfirmationPrompt bool
	Prompt             string
	Help               string
	Metavar            []string
	Callbacks          []Callback
	Hidden             bool // do not expose the resolved value to the action
}

// Option builds a flag-style parameter with normalized defaults: a single
// "--name" spelling when none was given, nargs 1, string type, and an
// exposed value.
func Option(spec OptionSpec) *Param {
	p := &Param{
		Name:               spec.Name,
		Opts:               spec.Opts,
		Type:               spec.Type,
		Required:           spec.Required,
		Multiple:           spec.Multiple,
		NArgs:              spec.NArgs,
		Default:            spec.Default,
		DefaultFunc:        spec.DefaultFunc,
		EnvVar:             spec.EnvVar,
		IsFlag:             spec.IsFlag,
		FlagValue:          spec.FlagValue,
		IsCount:            spec.IsCount,
		ConfirmationPrompt: spec.ConfirmationPrompt,
		Prompt:             spec.Prompt,
		Help:               spec.Help,
		Metavar:            spec.Metavar,
		Callbacks:          spec.Callbacks,
		ExposeValue:        !spec.Hidden,
	}
	normalize(p)
	return p
}

// ArgumentSpec carries the fields a caller sets when declaring a
// positional argument. Arguments are always required unless a default is
// declared.
type ArgumentSpec struct {
	Name      string
	Type      ParamType
	NArgs     int
	Default   any
	EnvVar    string
	Help      string
	Callbacks []Callback
}

// Argument builds a positional parameter.
func Argument(spec ArgumentSpec) *Param {
	p := &Param{
		Name:        spec.Name,
		Type:        spec.Type,
		Required:    spec.Default == nil,
		NArgs:       spec.NArgs,
		Default:     spec.Default,
		EnvVar:      spec.EnvVar,
		Help:        spec.Help,
		Callbacks:   spec.Callbacks,
		ExposeValue: true,
		IsArgument:  true,
	}
	normalize(p)
	return p
}

func normalize(p *Param) {
	if p.Type == nil {
		if p.IsFlag {
			p.Type = BoolType{}
		} else {
			p.Type = StringType{}
		}
	}
	if tt, ok := p.Type.(TupleType); ok && p.NArgs <= 1 {
		p.NArgs = len(tt.Types)
	}
	if p.NArgs == 0 {
		p.NArgs = 1
	}
	if len(p.Opts) == 0 && !p.IsArgument {
		p.Opts = []string{"--" + p.Name}
	}
}
