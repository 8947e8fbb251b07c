package config

import (
	cfg "github.com/cliform-tools/cli/internal/config"
	"github.com/cliform-tools/cli/internal/dispatchers"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	for _, key := range cfg.Keys {
		if key.Hidden {
			continue
		}
		value, exists := configMap[key.Name]
		if !exists || (value == "" && key.HideIfEmpty) {
			continue
		}
		_, _ = deps.Printf("%s=%s\n", key.Name, value)
	}

	return nil
}
