package form

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cliform-tools/cli/internal/binding"
	"github.com/cliform-tools/cli/internal/controls"
	"github.com/cliform-tools/cli/internal/params"
)

func rowsFixture(t *testing.T) (*binding.Registry, string) {
	t.Helper()
	root := &params.Command{
		Name: "main",
		Params: []*params.Param{
			params.Option(params.OptionSpec{Name: "name", Default: "demo"}),
			params.Option(params.OptionSpec{Name: "password", ConfirmationPrompt: true}),
			params.Option(params.OptionSpec{
				Name:    "window",
				Type:    params.TupleType{Types: []params.ParamType{params.IntType{}, params.IntType{}}},
				Default: []any{int64(1), int64(2)},
			}),
		},
	}
	reg, err := binding.Build(root, nil)
	require.NoError(t, err)
	return reg, binding.PathKey([]string{"main"})
}

func TestFlattenRows(t *testing.T) {
	reg, key := rowsFixture(t)

	rows := flattenRows(reg, key)
	labels := make([]string, len(rows))
	depths := make([]int, len(rows))
	for i, r := range rows {
		labels[i] = r.label
		depths[i] = r.depth
	}

	require.Equal(t, []string{
		"name",
		"password", "password", "repeat password",
		"window", "window[0]", "window[1]",
	}, labels)
	require.Equal(t, []int{0, 0, 1, 1, 0, 1, 1}, depths)

	// Member rows point back at their composite.
	require.Same(t, rows[1].ctl, rows[2].parent)
	require.Equal(t, 1, rows[3].index)
}

func TestEditable(t *testing.T) {
	text, err := controls.New(params.Option(params.OptionSpec{Name: "s"}), nil)
	require.NoError(t, err)
	require.True(t, editable(text))

	spin, err := controls.New(params.Option(params.OptionSpec{Name: "n", Type: params.IntType{}}), nil)
	require.NoError(t, err)
	require.True(t, editable(spin))

	check, err := controls.New(params.Option(params.OptionSpec{Name: "b", Type: params.BoolType{}}), nil)
	require.NoError(t, err)
	require.False(t, editable(check), "discrete controls toggle instead")

	sel, err := controls.New(params.Option(params.OptionSpec{
		Name: "mode", Type: params.ChoiceType{Choices: []string{"a", "b"}},
	}), nil)
	require.NoError(t, err)
	require.False(t, editable(sel))
}

func TestEditSeed(t *testing.T) {
	text, err := controls.New(params.Option(params.OptionSpec{Name: "s", Default: "hello"}), nil)
	require.NoError(t, err)
	require.Equal(t, "hello", editSeed(text))

	dt, err := controls.New(params.Option(params.OptionSpec{Name: "when", Type: params.DateTimeType{}}), nil)
	require.NoError(t, err)
	require.Equal(t, "", editSeed(dt), "zero timestamps seed an empty entry")

	require.NoError(t, dt.SetValue("2026-01-02"))
	require.Equal(t, "2026-01-02 00:00:00", editSeed(dt))
}

func TestCommitEditEmptyDisablesNumeric(t *testing.T) {
	spin, err := controls.New(params.Option(params.OptionSpec{Name: "n", Type: params.IntType{}, Default: 4}), nil)
	require.NoError(t, err)

	require.NoError(t, commitEdit(spin, "  "))
	require.False(t, spin.IsEnabled())

	require.NoError(t, commitEdit(spin, "7"))
	require.Equal(t, int64(7), spin.WidgetValue())
}

func TestCommitEditKeepsEmptyText(t *testing.T) {
	text, err := controls.New(params.Option(params.OptionSpec{Name: "s", Default: "x"}), nil)
	require.NoError(t, err)

	require.NoError(t, commitEdit(text, ""))
	require.True(t, text.IsEnabled(), "empty text is a value, not a disable")
	require.Equal(t, "", text.WidgetValue())
}

func TestValueText(t *testing.T) {
	check, err := controls.New(params.Option(params.OptionSpec{Name: "b", Type: params.BoolType{}, Default: true}), nil)
	require.NoError(t, err)
	require.Equal(t, "[x]", valueText(check))
	check.(*controls.CheckboxControl).Toggle()
	require.Equal(t, "[ ]", valueText(check))

	sel, err := controls.New(params.Option(params.OptionSpec{
		Name: "mode", Type: params.ChoiceType{Choices: []string{"fast", "slow"}},
	}), nil)
	require.NoError(t, err)
	require.Equal(t, "(none)", valueText(sel))
	require.NoError(t, sel.SetValue("fast"))
	require.Equal(t, "fast", valueText(sel))

	ms, err := controls.New(params.Option(params.OptionSpec{
		Name: "tags", Multiple: true, Type: params.ChoiceType{Choices: []string{"a", "b"}},
	}), nil)
	require.NoError(t, err)
	require.Equal(t, "(none)", valueText(ms))
	ms.(*controls.MultiSelectControl).ToggleChoice("a")
	ms.(*controls.MultiSelectControl).ToggleChoice("b")
	require.Equal(t, "a, b", valueText(ms))

	rep, err := controls.New(params.Option(params.OptionSpec{Name: "item", Multiple: true}), nil)
	require.NoError(t, err)
	require.Equal(t, "0 entries", valueText(rep))
	_, err = rep.(*controls.RepeatControl).AddChild("x")
	require.NoError(t, err)
	require.Equal(t, "1 entry", valueText(rep))

	path, err := controls.New(params.Option(params.OptionSpec{Name: "in", Type: params.PathType{Readable: true}}), nil)
	require.NoError(t, err)
	require.Equal(t, "(unset)", valueText(path))
	require.NoError(t, path.SetValue("-"))
	require.Equal(t, "- (stdin)", valueText(path))

	dialog, err := controls.New(params.Option(params.OptionSpec{Name: "go", IsFlag: true, Prompt: "Run?"}), nil)
	require.NoError(t, err)
	require.Equal(t, `asks "Run?" (currently no)`, valueText(dialog))
}
