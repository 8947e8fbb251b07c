package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cliform-tools/cli/internal/store"
	"github.com/cliform-tools/cli/internal/testutil"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	db := testutil.NewTestDB(t)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	testutil.SeedInvocations(t, db, []store.Invocation{
		{CommandPath: "main configure", Cmdline: "main configure --threads 4", StartedAt: base, Outcome: store.OutcomeOK},
		{CommandPath: "main publish", Cmdline: "main publish out.txt", StartedAt: base.Add(1 * time.Hour), Outcome: store.OutcomeFailed},
		{CommandPath: "main configure", Cmdline: "main configure --threads 8", StartedAt: base.Add(2 * time.Hour), Outcome: store.OutcomeOK},
		{CommandPath: "main publish", Cmdline: "main publish draft.txt", StartedAt: base.Add(3 * time.Hour), Outcome: store.OutcomeStopped},
	})
	return store.NewWithDB(db)
}

func TestRecordAssignsRunID(t *testing.T) {
	db := testutil.NewTestDB(t)
	st := store.NewWithDB(db)

	id, err := st.Record(store.Invocation{
		CommandPath: "main configure",
		Cmdline:     "main configure",
		StartedAt:   time.Now().UTC(),
		Outcome:     store.OutcomeOK,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	last, err := st.Last("main configure")
	require.NoError(t, err)
	require.NotNil(t, last)
	require.NotEmpty(t, last.RunID, "a fresh run ID is assigned when none is given")
}

func TestRecordKeepsExplicitRunID(t *testing.T) {
	db := testutil.NewTestDB(t)
	st := store.NewWithDB(db)

	_, err := st.Record(store.Invocation{
		RunID:       "run-42",
		CommandPath: "main configure",
		Cmdline:     "main configure",
		StartedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)

	last, err := st.Last("main configure")
	require.NoError(t, err)
	require.Equal(t, "run-42", last.RunID)
}

func TestListNewestFirst(t *testing.T) {
	st := seededStore(t)

	all, err := st.List(store.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "main publish draft.txt", all[0].Cmdline)
	require.Equal(t, "main configure --threads 4", all[3].Cmdline)
}

func TestListFilterByCommandPath(t *testing.T) {
	st := seededStore(t)

	got, err := st.List(store.Filter{CommandPath: "main configure"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, inv := range got {
		require.Equal(t, "main configure", inv.CommandPath)
	}
}

func TestListFilterByOutcome(t *testing.T) {
	st := seededStore(t)

	failed := store.OutcomeFailed
	got, err := st.List(store.Filter{Outcome: &failed})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "main publish out.txt", got[0].Cmdline)
}

func TestListFilterByTimeRange(t *testing.T) {
	st := seededStore(t)

	since := time.Date(2026, 8, 1, 11, 30, 0, 0, time.UTC)
	until := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	got, err := st.List(store.Filter{Since: &since, Until: &until})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "main configure --threads 8", got[0].Cmdline)
}

func TestListLimit(t *testing.T) {
	st := seededStore(t)

	got, err := st.List(store.Filter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "main publish draft.txt", got[0].Cmdline)
}

func TestLast(t *testing.T) {
	st := seededStore(t)

	last, err := st.Last("main configure")
	require.NoError(t, err)
	require.NotNil(t, last)
	require.Equal(t, "main configure --threads 8", last.Cmdline)

	none, err := st.Last("main missing")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestPruneKeepsNewest(t *testing.T) {
	st := seededStore(t)

	removed, err := st.Prune(2)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)

	all, err := st.List(store.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "main publish draft.txt", all[0].Cmdline)
	require.Equal(t, "main configure --threads 8", all[1].Cmdline)
}

func TestPruneRejectsNegativeCount(t *testing.T) {
	st := seededStore(t)
	_, err := st.Prune(-1)
	require.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "ok", store.OutcomeOK.String())
	require.Equal(t, "failed", store.OutcomeFailed.String())
	require.Equal(t, "stopped", store.OutcomeStopped.String())
	require.Equal(t, "unknown", store.Outcome(9).String())
}
