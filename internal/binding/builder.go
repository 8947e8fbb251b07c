package binding

import (
	"github.com/cliform-tools/cli/internal/controls"
	"github.com/cliform-tools/cli/internal/log"
	"github.com/cliform-tools/cli/internal/params"
)

// Build walks the command tree once and populates a registry through the
// resolver. Groups without own parameters get no registry entry.
func Build(root *params.Command, o *controls.Options) (*Registry, error) {
	reg := NewRegistry()
	var buildErr error

	root.Walk(func(path []string, cmd *params.Command) {
		if buildErr != nil {
			return
		}
		if cmd.IsGroup() && len(cmd.Params) == 0 {
			return
		}
		key := PathKey(path)
		reg.AddPath(key)
		if err := bindCommand(reg, key, cmd, o); err != nil {
			buildErr = err
		}
	})

	if buildErr != nil {
		return nil, buildErr
	}
	log.Debug("binding: registry built with %d command paths", len(reg.paths))
	return reg, nil
}

func bindCommand(reg *Registry, key string, cmd *params.Command, o *controls.Options) error {
	// Grouped flag parameters sharing a destination name collapse into
	// one feature-switch control instead of one control per flag.
	switches := make(map[string][]*params.Param)
	var switchOrder []string

	for _, p := range cmd.Params {
		if p.IsFlag && p.FlagValue != "" {
			if _, seen := switches[p.Name]; !seen {
				switchOrder = append(switchOrder, p.Name)
			}
			switches[p.Name] = append(switches[p.Name], p)
			continue
		}

		ctl, err := controls.New(p, o)
		if err != nil {
			return err
		}
		initEnabledState(ctl, p)
		reg.Register(key, p.Name, ctl, Meta{NArgs: p.NArgs, Kind: ctl.Kind()})
	}

	for _, dest := range switchOrder {
		members := switches[dest]
		ctl := buildFeatureSwitch(dest, members)
		reg.Register(key, dest, ctl, Meta{NArgs: 1, Kind: ctl.Kind()})
	}

	return nil
}

// initEnabledState mirrors how a freshly opened form presents a
// parameter: required controls are enabled and locked; optional controls
// start enabled only when they carry an explicit default (a truthy one
// for flags) and stay user-toggleable.
func initEnabledState(ctl controls.Control, p *params.Param) {
	required := p.EffectiveRequired()
	enabled := required
	if !enabled {
		if p.IsFlag {
			enabled = p.TruthyDefault()
		} else {
			enabled = p.HasDefault()
		}
	}
	ctl.SetEnabled(enabled)
	ctl.SetChangeable(!required)
}

func buildFeatureSwitch(dest string, members []*params.Param) *controls.FeatureSwitchControl {
	values := make([]string, len(members))
	required := false
	for i, m := range members {
		values[i] = m.FlagValue
		required = required || m.Required
	}
	synth := params.Option(params.OptionSpec{
		Name:     dest,
		Type:     params.ChoiceType{Choices: values},
		Required: required,
	})

	ctl := controls.NewFeatureSwitch(synth, members)

	// The first member with a truthy default selects the initial value;
	// otherwise the first flag wins.
	def := members[0].FlagValue
	for _, m := range members {
		if m.TruthyDefault() {
			def = m.FlagValue
			break
		}
	}
	_ = ctl.SetValue(def)
	return ctl
}
