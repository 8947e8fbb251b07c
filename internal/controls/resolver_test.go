package controls

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cliform-tools/cli/internal/params"
)

func TestResolveKind(t *testing.T) {
	tests := []struct {
		name  string
		param *params.Param
		opts  *Options
		want  Kind
	}{
		{
			name:  "string falls back to text",
			param: params.Option(params.OptionSpec{Name: "label"}),
			want:  KindText,
		},
		{
			name:  "plain bool is a checkbox",
			param: params.Option(params.OptionSpec{Name: "enabled", Type: params.BoolType{}}),
			want:  KindCheckbox,
		},
		{
			name:  "bool flag with prompt is a confirm dialog",
			param: params.Option(params.OptionSpec{Name: "force", IsFlag: true, Prompt: "Are you sure?"}),
			want:  KindConfirmDialog,
		},
		{
			name:  "bool flag without prompt is a checkbox",
			param: params.Option(params.OptionSpec{Name: "verbose", IsFlag: true}),
			want:  KindCheckbox,
		},
		{
			name:  "confirmation prompt pairs the input",
			param: params.Option(params.OptionSpec{Name: "password", ConfirmationPrompt: true}),
			want:  KindConfirmPair,
		},
		{
			name: "choice is a single select",
			param: params.Option(params.OptionSpec{
				Name: "mode",
				Type: params.ChoiceType{Choices: []string{"fast", "slow"}},
			}),
			want: KindSelect,
		},
		{
			name: "repeated choice is a multi-select",
			param: params.Option(params.OptionSpec{
				Name:     "features",
				Type:     params.ChoiceType{Choices: []string{"alpha", "beta"}},
				Multiple: true,
			}),
			want: KindMultiSelect,
		},
		{
			name:  "multiple wraps the scalar in a repeat",
			param: params.Option(params.OptionSpec{Name: "tag", Multiple: true}),
			want:  KindRepeat,
		},
		{
			name: "repeated tuple stays a repeat",
			param: params.Option(params.OptionSpec{
				Name:     "pair",
				Type:     params.TupleType{Types: []params.ParamType{params.StringType{}, params.IntType{}}},
				Multiple: true,
			}),
			want: KindRepeat,
		},
		{
			name: "tuple type is a tuple",
			param: params.Option(params.OptionSpec{
				Name: "range",
				Type: params.TupleType{Types: []params.ParamType{params.IntType{}, params.IntType{}}},
			}),
			want: KindTuple,
		},
		{
			name:  "nargs above one is a fixed list",
			param: params.Option(params.OptionSpec{Name: "coords", Type: params.IntType{}, NArgs: 3}),
			want:  KindFixedList,
		},
		{
			name:  "int is a spinner",
			param: params.Option(params.OptionSpec{Name: "count", Type: params.IntType{}}),
			want:  KindIntSpinner,
		},
		{
			name:  "float is a spinner",
			param: params.Option(params.OptionSpec{Name: "threshold", Type: params.FloatType{}}),
			want:  KindFloatSpinner,
		},
		{
			name:  "path gets the path control",
			param: params.Option(params.OptionSpec{Name: "input", Type: params.PathType{}}),
			want:  KindPath,
		},
		{
			name:  "datetime gets the datetime control",
			param: params.Option(params.OptionSpec{Name: "since", Type: params.DateTimeType{}}),
			want:  KindDateTime,
		},
		{
			name:  "unknown custom type falls back to text",
			param: params.Option(params.OptionSpec{Name: "color", Type: params.CustomType{Name: "color"}}),
			want:  KindText,
		},
		{
			name:  "custom binding wins over the built-in resolution",
			param: params.Option(params.OptionSpec{Name: "color", Type: params.CustomType{Name: "color"}}),
			opts: &Options{Custom: map[string]CustomBinding{
				"color": {Get: func() any { return "" }, Set: func(any) error { return nil }},
			}},
			want: KindCustom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveKind(tt.param, tt.param.Type, tt.opts)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewMatchesResolvedKind(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "count", Type: params.IntType{}})
	ctl, err := New(p, nil)
	require.NoError(t, err)
	require.Equal(t, KindIntSpinner, ctl.Kind())
	require.Same(t, p, ctl.Param())
}

func TestNewCustomBindingRequiresAccessors(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "color", Type: params.CustomType{Name: "color"}})
	o := &Options{Custom: map[string]CustomBinding{
		"color": {Get: func() any { return "" }},
	}}

	_, err := New(p, o)
	require.Error(t, err)

	var unsupported *UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "color", unsupported.ParamName)
	require.Contains(t, err.Error(), "no control supports")
}

func TestNewCustomBindingRoutesAccess(t *testing.T) {
	state := "initial"
	p := params.Option(params.OptionSpec{Name: "color", Type: params.CustomType{Name: "color"}})
	o := &Options{Custom: map[string]CustomBinding{
		"color": {
			Get: func() any { return state },
			Set: func(v any) error { state = v.(string); return nil },
		},
	}}

	ctl, err := New(p, o)
	require.NoError(t, err)
	require.Equal(t, "initial", ctl.WidgetValue())

	require.NoError(t, ctl.SetValue("updated"))
	require.Equal(t, "updated", state)
	require.Equal(t, "updated", ctl.WidgetValue())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "text", KindText.String())
	require.Equal(t, "confirm-dialog", KindConfirmDialog.String())
	require.Equal(t, "feature-switch", KindFeatureSwitch.String())
	require.Equal(t, "kind(99)", Kind(99).String())
}
