package controls

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cliform-tools/cli/internal/params"
)

func TestTupleArity(t *testing.T) {
	p := params.Option(params.OptionSpec{
		Name: "range",
		Type: params.TupleType{Types: []params.ParamType{params.IntType{}, params.IntType{}}},
	})
	require.Equal(t, 2, p.NArgs)

	ctl, err := New(p, nil)
	require.NoError(t, err)

	err = ctl.SetValue([]any{3})
	require.EqualError(t, err, "Takes 2 values but 1 was given.")

	err = ctl.SetValue([]any{3, 7, 9})
	require.EqualError(t, err, "Takes 2 values but 3 were given.")

	require.NoError(t, ctl.SetValue(nil))
	require.False(t, ctl.IsEnabled())
}

func TestTupleValueAndFragment(t *testing.T) {
	p := params.Option(params.OptionSpec{
		Name: "range",
		Type: params.TupleType{Types: []params.ParamType{params.IntType{}, params.IntType{}}},
	})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	require.NoError(t, ctl.SetValue([]any{3, 7}))

	v, verr := ctl.Value()
	require.False(t, verr.IsError())
	require.Equal(t, []any{int64(3), int64(7)}, v)

	require.Equal(t, "--range 3 7 ", ctl.CmdlineFragment())
}

func TestTupleMixedMemberTypes(t *testing.T) {
	p := params.Option(params.OptionSpec{
		Name: "entry",
		Type: params.TupleType{Types: []params.ParamType{params.StringType{}, params.IntType{}}},
	})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	require.NoError(t, ctl.SetValue([]any{"alpha", "12"}))

	v, verr := ctl.Value()
	require.False(t, verr.IsError())
	require.Equal(t, []any{"alpha", int64(12)}, v)
}

func TestFixedListDefaultSeeding(t *testing.T) {
	p := params.Option(params.OptionSpec{
		Name:    "coords",
		Type:    params.IntType{},
		NArgs:   2,
		Default: []any{1, 2},
	})
	ctl, err := New(p, nil)
	require.NoError(t, err)
	require.Equal(t, KindFixedList, ctl.Kind())

	v, verr := ctl.Value()
	require.False(t, verr.IsError())
	require.Equal(t, []any{int64(1), int64(2)}, v)
}

func TestFixedListArity(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "coords", Type: params.IntType{}, NArgs: 2})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	err = ctl.SetValue([]any{1})
	require.EqualError(t, err, "Takes 2 values but 1 was given.")
}

func TestRepeatStartsDisabledWithoutEntries(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "tag", Multiple: true})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	require.False(t, ctl.IsEnabled())
	require.True(t, ctl.IsEmpty())
}

func TestRepeatAddRemoveChild(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "tag", Multiple: true})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	rep := ctl.(*RepeatControl)
	_, err = rep.AddChild("a")
	require.NoError(t, err)
	require.True(t, rep.IsEnabled(), "adding an entry re-enables the control")

	_, err = rep.AddChild("b")
	require.NoError(t, err)
	require.Len(t, rep.Children(), 2)

	rep.RemoveChild(0)
	require.Len(t, rep.Children(), 1)
	require.Equal(t, "b", rep.Children()[0].WidgetValue())
}

func TestRepeatSetValueGrowsAndShrinks(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "tag", Multiple: true})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	rep := ctl.(*RepeatControl)
	require.NoError(t, rep.SetValue([]string{"a", "b", "c"}))
	require.Len(t, rep.Children(), 3)

	require.NoError(t, rep.SetValue([]string{"x"}))
	require.Len(t, rep.Children(), 1)
	require.Equal(t, "x", rep.Children()[0].WidgetValue())
}

func TestRepeatRequiredWithoutEntries(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "tag", Multiple: true, Required: true})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	_, verr := ctl.Value()
	require.Equal(t, RequiredError, verr.Kind)
	require.Equal(t, "Required error (tag): option is empty", verr.Message())
}

func TestRepeatSeedsFromEnvVar(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("CLIFORM_TEST_TAGS", strings.Join([]string{"a", "b"}, sep))

	p := params.Option(params.OptionSpec{Name: "tag", Multiple: true, EnvVar: "CLIFORM_TEST_TAGS"})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	rep := ctl.(*RepeatControl)
	require.Len(t, rep.Children(), 2)
	require.Equal(t, "a", rep.Children()[0].WidgetValue())
	require.Equal(t, "b", rep.Children()[1].WidgetValue())
}

func TestRepeatMaterializesDefaultOnResolve(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "tag", Multiple: true, Default: []any{"a", "b"}})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	rep := ctl.(*RepeatControl)
	require.NoError(t, rep.SetValue(nil)) // clear the seeded entries
	require.Empty(t, rep.Children())

	v, verr := rep.Value()
	require.False(t, verr.IsError())
	require.Equal(t, []any{"a", "b"}, v)
}

func TestRepeatJoinsChildConversionErrors(t *testing.T) {
	bad := params.CustomType{Name: "even", Func: func(v any) (any, error) {
		return nil, fmt.Errorf("%v is bad", v)
	}}
	p := params.Option(params.OptionSpec{Name: "evens", Multiple: true, Type: bad})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	rep := ctl.(*RepeatControl)
	require.NoError(t, rep.SetValue([]string{"a", "b"}))

	_, verr := rep.Value()
	require.Equal(t, ConvertingError, verr.Kind)
	require.Equal(t, "[a is bad, b is bad]", verr.Detail)

	require.NoError(t, rep.SetValue([]string{"a"}))
	_, verr = rep.Value()
	require.Equal(t, "a is bad", verr.Detail)
}

func TestRepeatFragmentRepeatsFlag(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "tag", Multiple: true})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	require.NoError(t, ctl.SetValue([]string{"a", "b"}))
	require.Equal(t, "--tag a --tag b ", ctl.CmdlineFragment())
}

func TestConfirmPairEqualValues(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "password", ConfirmationPrompt: true})
	ctl, err := New(p, nil)
	require.NoError(t, err)
	require.Equal(t, KindConfirmPair, ctl.Kind())

	require.NoError(t, ctl.SetValue("s3cret"))

	v, verr := ctl.Value()
	require.False(t, verr.IsError())
	require.Equal(t, "s3cret", v)
}

func TestConfirmPairMismatch(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "password", ConfirmationPrompt: true})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	pair := ctl.(*ConfirmPairControl)
	require.NoError(t, pair.Field().SetValue("s3cret"))
	require.NoError(t, pair.ConfirmField().SetValue("other"))

	_, verr := pair.Value()
	require.Equal(t, ConfirmationInputNotEqualError, verr.Kind)
	require.Equal(t, "Confirmation input (password) is not equal", verr.Message())
}

func TestConfirmDialogPrompter(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "force", IsFlag: true, Prompt: "Proceed?"})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	dialog := ctl.(*ConfirmDialogControl)

	var asked string
	dialog.SetPrompter(func(prompt string) bool {
		asked = prompt
		return true
	})

	v, verr := dialog.Value()
	require.False(t, verr.IsError())
	require.Equal(t, true, v)
	require.Equal(t, "Proceed?", asked)
}

func TestConfirmDialogStoredAnswer(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "force", IsFlag: true, Prompt: "Proceed?"})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	// No prompter installed: the stored answer stands.
	v, verr := ctl.Value()
	require.False(t, verr.IsError())
	require.Equal(t, false, v)

	require.NoError(t, ctl.SetValue(true))
	v, verr = ctl.Value()
	require.False(t, verr.IsError())
	require.Equal(t, true, v)
}

func newTestFeatureSwitch(t *testing.T) *FeatureSwitchControl {
	t.Helper()
	members := []*params.Param{
		params.Option(params.OptionSpec{Name: "transform", Opts: []string{"--upper"}, IsFlag: true, FlagValue: "upper"}),
		params.Option(params.OptionSpec{Name: "transform", Opts: []string{"--lower"}, IsFlag: true, FlagValue: "lower"}),
	}
	synth := params.Option(params.OptionSpec{
		Name: "transform",
		Type: params.ChoiceType{Choices: []string{"upper", "lower"}},
	})
	return NewFeatureSwitch(synth, members)
}

func TestFeatureSwitch(t *testing.T) {
	ctl := newTestFeatureSwitch(t)

	require.Equal(t, []string{"upper", "lower"}, ctl.Choices())
	require.Equal(t, "--upper", ctl.OptFor("upper"))
	require.Equal(t, "", ctl.OptFor("bogus"))

	require.NoError(t, ctl.SetValue("lower"))
	require.Equal(t, "--lower ", ctl.CmdlineFragment())

	require.Error(t, ctl.SetValue("bogus"))
}

func TestFeatureSwitchEmptyFragment(t *testing.T) {
	ctl := newTestFeatureSwitch(t)
	require.True(t, ctl.IsEmpty())
	require.Equal(t, "", ctl.CmdlineFragment())
}

func TestFeatureSwitchRequiresMembers(t *testing.T) {
	synth := params.Option(params.OptionSpec{Name: "transform"})
	require.Panics(t, func() { NewFeatureSwitch(synth, nil) })
}

func TestMultiSelectToggleKeepsChoiceOrder(t *testing.T) {
	p := params.Option(params.OptionSpec{
		Name:     "features",
		Multiple: true,
		Type:     params.ChoiceType{Choices: []string{"alpha", "beta", "gamma"}},
	})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	ms := ctl.(*MultiSelectControl)
	ms.ToggleChoice("gamma")
	ms.ToggleChoice("alpha")
	require.Equal(t, []string{"alpha", "gamma"}, ms.WidgetValue())

	require.Equal(t, "--features alpha --features gamma ", ms.CmdlineFragment())

	ms.ToggleChoice("alpha")
	require.Equal(t, []string{"gamma"}, ms.WidgetValue())

	v, verr := ms.Value()
	require.False(t, verr.IsError())
	require.Equal(t, []any{"gamma"}, v)
}

func TestCheckboxFlagToggle(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "verbose", IsFlag: true})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	cb := ctl.(*CheckboxControl)
	require.False(t, cb.IsEnabled())
	require.Equal(t, false, cb.WidgetValue())

	cb.Toggle()
	require.True(t, cb.IsEnabled())
	require.Equal(t, true, cb.WidgetValue())
}

func TestCheckboxStoredBool(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "enabled", Type: params.BoolType{}, Default: true})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	cb := ctl.(*CheckboxControl)
	require.Equal(t, true, cb.WidgetValue())

	cb.Toggle()
	require.Equal(t, false, cb.WidgetValue())
}

func TestIntControlStepClamps(t *testing.T) {
	p := params.Option(params.OptionSpec{
		Name:    "width",
		Type:    params.IntType{Min: 35, Max: 250, HasMin: true, HasMax: true},
		Default: 100,
	})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	spin := ctl.(*IntControl)
	spin.Step(200)
	require.Equal(t, int64(250), spin.WidgetValue())

	spin.Step(-1000)
	require.Equal(t, int64(35), spin.WidgetValue())
}

func TestPathControlWantsStdin(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "input", Type: params.PathType{Readable: true}})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	path := ctl.(*PathControl)
	require.False(t, path.WantsStdin())
	require.Equal(t, "", path.CmdlineFragment(), "empty path renders nothing")

	require.NoError(t, path.SetValue("-"))
	require.True(t, path.WantsStdin())

	require.NoError(t, path.SetValue("notes.txt"))
	require.False(t, path.WantsStdin())
	require.Equal(t, "--input notes.txt ", path.CmdlineFragment())
}

func TestDateTimeControl(t *testing.T) {
	p := params.Option(params.OptionSpec{Name: "when", Type: params.DateTimeType{}})
	ctl, err := New(p, nil)
	require.NoError(t, err)

	dt := ctl.(*DateTimeControl)
	require.True(t, dt.IsEmpty())
	require.Equal(t, "2006-01-02 15:04:05", dt.DisplayFormat())

	require.NoError(t, dt.SetValue("2026-01-02"))
	want := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	require.Equal(t, want, dt.WidgetValue())

	require.Equal(t, "--when '2026-01-02 00:00:00' ", dt.CmdlineFragment())

	dt.SetDisplayFormat("2006-01-02")
	require.Equal(t, "--when 2026-01-02 ", dt.CmdlineFragment())

	dt.SetDisplayFormat("not-a-declared-format")
	require.Equal(t, "2006-01-02", dt.DisplayFormat())
}
