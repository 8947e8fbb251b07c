package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetUpdatesExistingKey(t *testing.T) {
	lines := []string{
		"# cliform configuration",
		"history=true",
		"log_level=warn",
	}

	got, existed := Set(lines, "log_level", "debug")
	require.True(t, existed)
	require.Equal(t, []string{
		"# cliform configuration",
		"history=true",
		"log_level=debug",
	}, got)
}

func TestSetAppendsMissingKey(t *testing.T) {
	lines := []string{"history=true"}

	got, existed := Set(lines, "pager", "less -FRSX")
	require.False(t, existed)
	require.Equal(t, []string{"history=true", "pager=less -FRSX"}, got)
}

func TestSetPreservesInlineComment(t *testing.T) {
	lines := []string{"history_limit=200 # invocations kept before pruning"}

	got, existed := Set(lines, "history_limit", "500")
	require.True(t, existed)
	require.Equal(t, []string{"history_limit=500 # invocations kept before pruning"}, got)
}

func TestSetIgnoresCommentedKeys(t *testing.T) {
	lines := []string{"# display_date="}

	got, existed := Set(lines, "display_date", "Jan 02")
	require.False(t, existed)
	require.Equal(t, []string{"# display_date=", "display_date=Jan 02"}, got)
}

func TestSetMatchesKeyWithSurroundingSpace(t *testing.T) {
	lines := []string{"  history  =  true"}

	got, existed := Set(lines, "history", "false")
	require.True(t, existed)
	require.Equal(t, []string{"history=false"}, got)
}

func TestUnsetRemovesKey(t *testing.T) {
	lines := []string{
		"# cliform configuration",
		"history=true",
		"log_level=debug",
	}

	got, removed := Unset(lines, "log_level")
	require.True(t, removed)
	require.Equal(t, []string{
		"# cliform configuration",
		"history=true",
	}, got)
}

func TestUnsetMissingKey(t *testing.T) {
	lines := []string{"history=true"}

	got, removed := Unset(lines, "pager")
	require.False(t, removed)
	require.Equal(t, []string{"history=true"}, got)
}

func TestUnsetKeepsCommentsAndBlanks(t *testing.T) {
	lines := []string{
		"# heading",
		"",
		"history=true",
		"not a key value line",
	}

	got, removed := Unset(lines, "history")
	require.True(t, removed)
	require.Equal(t, []string{
		"# heading",
		"",
		"not a key value line",
	}, got)
}

func TestKnownKey(t *testing.T) {
	require.True(t, KnownKey("theme"))
	require.True(t, KnownKey("history_limit"))
	require.False(t, KnownKey("bogus"))
}

func TestReadWriteRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	want := []string{"# test config", "history=false", "log_level=error"}
	require.NoError(t, WriteLines(want))

	got, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadLinesInitializesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	lines, err := ReadLines()
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	require.Contains(t, lines, "theme=default")
	require.Contains(t, lines, "history_limit=200")
	// Optional overrides come commented out.
	require.Contains(t, lines, "# display_date=")
	// Values with spaces get quoted.
	require.Contains(t, lines, `pager="less -FRSX"`)
}

func TestGetFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v, ok := Get("log_level")
	require.True(t, ok)
	require.Equal(t, "warn", v)

	_, ok = Get("bogus")
	require.False(t, ok)
}

func TestGetPrefersFileValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, WriteLines([]string{"log_level=debug"}))

	v, ok := Get("log_level")
	require.True(t, ok)
	require.Equal(t, "debug", v)
}

func TestGetAllMergesFileOverDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, WriteLines([]string{"history=false"}))

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "false", all["history"])
	require.Equal(t, "24h", all["display_time"])
}

func TestWithLockSerializesAccess(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	ran := false
	err := WithLock(func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, ran)
}
