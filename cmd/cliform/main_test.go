package main

import (
	"reflect"
	"testing"
)

func TestExtractFlagsAndCommands(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantFlags    []string
		wantCommands []string
	}{
		{
			name:         "no flags or commands",
			args:         []string{},
			wantFlags:    []string{},
			wantCommands: []string{},
		},
		{
			name:         "only commands",
			args:         []string{"history", "list"},
			wantFlags:    []string{},
			wantCommands: []string{"history", "list"},
		},
		{
			name:         "boolean flags",
			args:         []string{"--help", "-h", "--failed"},
			wantFlags:    []string{"--help", "-h", "--failed"},
			wantCommands: []string{},
		},
		{
			name:         "numeric shorthand -5",
			args:         []string{"-5"},
			wantFlags:    []string{"--limit=5"},
			wantCommands: []string{},
		},
		{
			name:         "numeric shorthand -100",
			args:         []string{"-100"},
			wantFlags:    []string{"--limit=100"},
			wantCommands: []string{},
		},
		{
			name:         "invalid numeric -0",
			args:         []string{"-0"},
			wantFlags:    []string{"-0"},
			wantCommands: []string{},
		},
		{
			name:         "-n with space-separated value",
			args:         []string{"-n", "3"},
			wantFlags:    []string{"--limit=3"},
			wantCommands: []string{},
		},
		{
			name:         "-n with equals stays as typed",
			args:         []string{"-n=5"},
			wantFlags:    []string{"-n=5"},
			wantCommands: []string{},
		},
		{
			name:         "--limit with space-separated value",
			args:         []string{"--limit", "10"},
			wantFlags:    []string{"--limit=10"},
			wantCommands: []string{},
		},
		{
			name:         "--limit with equals",
			args:         []string{"--limit=7"},
			wantFlags:    []string{"--limit=7"},
			wantCommands: []string{},
		},
		{
			name:         "mixed: command with -n value",
			args:         []string{"history", "list", "-n", "5"},
			wantFlags:    []string{"--limit=5"},
			wantCommands: []string{"history", "list"},
		},
		{
			name:         "pager flag",
			args:         []string{"--pager", "less"},
			wantFlags:    []string{"--pager=less"},
			wantCommands: []string{},
		},
		{
			name:         "module flag with value",
			args:         []string{"export", "configure", "--module", "example/app.go"},
			wantFlags:    []string{"--module=example/app.go"},
			wantCommands: []string{"export", "configure"},
		},
		{
			name:         "-n without value",
			args:         []string{"-n"},
			wantFlags:    []string{"-n"},
			wantCommands: []string{},
		},
		{
			name:         "--limit without value",
			args:         []string{"--limit"},
			wantFlags:    []string{"--limit"},
			wantCommands: []string{},
		},
		{
			name:         "complex real-world example",
			args:         []string{"history", "list", "-5", "--failed", "--path", "pipeline configure"},
			wantFlags:    []string{"--limit=5", "--failed", "--path=pipeline configure"},
			wantCommands: []string{"history", "list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFlags, gotCommands := extractFlagsAndCommands(tt.args)

			if !reflect.DeepEqual(gotFlags, tt.wantFlags) {
				t.Errorf("extractFlagsAndCommands() flags = %v, want %v", gotFlags, tt.wantFlags)
			}
			if !reflect.DeepEqual(gotCommands, tt.wantCommands) {
				t.Errorf("extractFlagsAndCommands() commands = %v, want %v", gotCommands, tt.wantCommands)
			}
		})
	}
}
