package codec

import (
	"fmt"
	"strings"

	shellwords "github.com/mattn/go-shellwords"

	"github.com/cliform-tools/cli/internal/binding"
	"github.com/cliform-tools/cli/internal/controls"
	"github.com/cliform-tools/cli/internal/log"
	"github.com/cliform-tools/cli/internal/params"
)

// Import parses a command string, descends the command tree along its
// leading command names, and pushes the parsed parameter values into the
// registered controls of the selected command. Parameters the string
// does not mention fall back to their declared defaults, so importing an
// exported line reproduces the exported state.
//
// Token-level failures leave every control untouched. The returned
// hierarchy names the selected command path, root included.
func Import(reg *binding.Registry, root *params.Command, cmdstr string, id Identity) ([]string, controls.Error) {
	tokens, err := shellwords.Parse(cmdstr)
	if err != nil {
		return nil, importError(fmt.Sprintf("cannot tokenize %q: %v", cmdstr, err))
	}
	log.Debug("codec: import %q read as %d tokens", cmdstr, len(tokens))

	if id.EntryPoint {
		if len(tokens) == 0 || tokens[0] != id.Name {
			return nil, importError("Cannot import due to missing or wrong entry point name")
		}
	} else if len(tokens) <= id.width() {
		return nil, importError("Cannot import due to missing or wrong file/function combination")
	}
	tokens = tokens[id.width():]

	hierarchy := []string{root.Name}
	cmd := root
	for len(tokens) > 0 {
		sub := cmd.Subcommand(tokens[0])
		if sub == nil {
			break
		}
		hierarchy = append(hierarchy, sub.Name)
		cmd = sub
		tokens = tokens[1:]
	}

	key := binding.PathKey(hierarchy)
	staged, err := parseTokens(cmd, tokens)
	if err != nil {
		return nil, importError(err.Error())
	}

	if applyErr := apply(reg, key, cmd, staged); applyErr.IsError() {
		return nil, applyErr
	}
	return hierarchy, controls.Ok
}

func importError(detail string) controls.Error {
	return controls.Error{Kind: controls.ProcessingValueError, Trigger: "import", Detail: detail}
}

// parseTokens matches the remaining tokens against the command's own
// parameters and stages the raw values by parameter name. Nothing is
// written to a control here, so a bad token cannot half-apply an import.
func parseTokens(cmd *params.Command, tokens []string) (map[string]any, error) {
	byOpt := make(map[string]*params.Param)
	var positional []*params.Param
	for _, p := range cmd.Params {
		if p.IsArgument {
			positional = append(positional, p)
			continue
		}
		for _, o := range p.Opts {
			byOpt[o] = p
		}
	}

	staged := make(map[string]any)
	argIdx := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !strings.HasPrefix(tok, "-") || tok == "-" || tok == "--" {
			p, seq, err := nextPositional(positional, &argIdx, tokens, &i, tok)
			if err != nil {
				return nil, err
			}
			staged[p.Name] = seq
			continue
		}

		spelling, inline, hasInline := splitInline(tok)
		p, ok := byOpt[spelling]
		if !ok {
			if name, n := countRun(byOpt, spelling); n > 0 {
				staged[name] = stagedCount(staged[name]) + n
				continue
			}
			return nil, fmt.Errorf("no such option: %s", spelling)
		}

		switch {
		case p.IsCount:
			staged[p.Name] = stagedCount(staged[p.Name]) + 1
		case p.IsFlag && p.FlagValue != "":
			staged[p.Name] = p.FlagValue
		case p.IsFlag:
			if hasInline {
				return nil, fmt.Errorf("option %s does not take a value", spelling)
			}
			staged[p.Name] = true
		default:
			var value any
			if hasInline {
				if p.NArgs > 1 {
					return nil, fmt.Errorf("option %s takes %d arguments, not an inline value", spelling, p.NArgs)
				}
				value = inline
			} else {
				seq, err := consume(tokens, &i, p.NArgs, spelling)
				if err != nil {
					return nil, err
				}
				if p.NArgs > 1 {
					value = seq
				} else {
					value = seq[0].(string)
				}
			}
			if p.Multiple {
				prev, _ := staged[p.Name].([]any)
				staged[p.Name] = append(prev, value)
			} else {
				staged[p.Name] = value
			}
		}
	}

	return staged, nil
}

// splitInline breaks "--opt=value" into its spelling and inline value.
func splitInline(tok string) (string, string, bool) {
	if !strings.HasPrefix(tok, "--") {
		return tok, "", false
	}
	if idx := strings.IndexByte(tok, '='); idx >= 0 {
		return tok[:idx], tok[idx+1:], true
	}
	return tok, "", false
}

// countRun recognizes collapsed short counters like -vvv. It reports the
// owning parameter name and the run length, or 0 when the token is not a
// run over a counting option.
func countRun(byOpt map[string]*params.Param, tok string) (string, int) {
	if len(tok) < 2 || strings.HasPrefix(tok, "--") {
		return "", 0
	}
	letter := tok[1]
	for j := 1; j < len(tok); j++ {
		if tok[j] != letter {
			return "", 0
		}
	}
	p, ok := byOpt["-"+string(letter)]
	if !ok || !p.IsCount {
		return "", 0
	}
	return p.Name, len(tok) - 1
}

func stagedCount(v any) int {
	if n, ok := v.(int); ok {
		return n
	}
	return 0
}

// consume takes the next n tokens as values for the option at *i.
func consume(tokens []string, i *int, n int, spelling string) ([]any, error) {
	if *i+n >= len(tokens) {
		return nil, fmt.Errorf("option %s requires %d argument(s)", spelling, n)
	}
	out := make([]any, n)
	for j := 0; j < n; j++ {
		*i++
		out[j] = tokens[*i]
	}
	return out, nil
}

// nextPositional assigns a bare token (plus arity-mates) to the next
// unfilled argument parameter.
func nextPositional(positional []*params.Param, argIdx *int, tokens []string, i *int, tok string) (*params.Param, any, error) {
	if *argIdx >= len(positional) {
		return nil, nil, fmt.Errorf("got unexpected extra argument (%s)", tok)
	}
	p := positional[*argIdx]
	*argIdx++
	if p.NArgs <= 1 {
		return p, tok, nil
	}
	seq := make([]any, 0, p.NArgs)
	seq = append(seq, tok)
	for len(seq) < p.NArgs {
		*i++
		if *i >= len(tokens) {
			return nil, nil, fmt.Errorf("argument %s requires %d values", p.Name, p.NArgs)
		}
		seq = append(seq, tokens[*i])
	}
	return p, seq, nil
}

// apply pushes the staged values into the controls. Every parameter of
// the command gets set: mentioned ones to their parsed value, the rest to
// their declared default so the import fully replaces prior state.
func apply(reg *binding.Registry, key string, cmd *params.Command, staged map[string]any) controls.Error {
	done := make(map[string]bool)
	for _, p := range cmd.Params {
		if done[p.Name] {
			continue
		}
		done[p.Name] = true

		ctl, ok := reg.Lookup(key, p.Name)
		if !ok {
			continue
		}

		value, mentioned := staged[p.Name]
		if !mentioned {
			value = importDefault(ctl, p, cmd)
		}
		if err := ctl.SetValue(value); err != nil {
			return controls.Error{Kind: controls.ProcessingValueError, Trigger: p.Name, Detail: err.Error()}
		}
	}
	return controls.Ok
}

// importDefault materializes the value an unmentioned parameter takes:
// the declared default, or for a collapsed flag group the flag value of
// the member whose default is set.
func importDefault(ctl controls.Control, p *params.Param, cmd *params.Command) any {
	if ctl.Kind() == controls.KindFeatureSwitch {
		for _, m := range cmd.Params {
			if m.Name == p.Name && m.TruthyDefault() {
				return m.FlagValue
			}
		}
		return nil
	}
	if p.IsFlag {
		return p.TruthyDefault()
	}
	if p.IsCount {
		return p.DefaultValue(0)
	}
	return p.DefaultValue(nil)
}
