package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jmhdiff/internal/jmh"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecords() []jmh.Record {
	return []jmh.Record{
		{Name: "b1", Mode: jmh.Throughput, Count: 25, Score: 100.5, Error: 1.2, Units: "ops/s"},
		{Name: "b2", Mode: jmh.AverageTime, Count: 10, Score: 3.25, Error: 0.05, Units: "ms/op"},
	}
}

func TestSaveAndLoadLatest(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Save("baseline", sampleRecords())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	run, err := store.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "baseline", run.Label)
	assert.Equal(t, sampleRecords(), run.Records)
}

func TestLoadLatestPicksNewestRun(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("first", sampleRecords()[:1])
	require.NoError(t, err)
	second, err := store.Save("second", sampleRecords())
	require.NoError(t, err)

	run, err := store.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, second, run.ID)
}

func TestLoadByLabel(t *testing.T) {
	store := newTestStore(t)

	want, err := store.Save("release-1.2", sampleRecords())
	require.NoError(t, err)
	_, err = store.Save("nightly", sampleRecords()[:1])
	require.NoError(t, err)

	run, err := store.LoadByLabel("release-1.2")
	require.NoError(t, err)
	assert.Equal(t, want, run.ID)

	_, err = store.LoadByLabel("missing")
	assert.ErrorIs(t, err, ErrNoRuns)
}

func TestLoadLatestEmpty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoadLatest()
	assert.ErrorIs(t, err, ErrNoRuns)
}

func TestList(t *testing.T) {
	store := newTestStore(t)

	for _, label := range []string{"a", "b", "c"} {
		_, err := store.Save(label, sampleRecords())
		require.NoError(t, err)
	}

	runs, err := store.List(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].Label)
	assert.Equal(t, "b", runs[1].Label)
	// List leaves records unloaded.
	assert.Nil(t, runs[0].Records)
}

func TestCount(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Save("", sampleRecords())
	require.NoError(t, err)

	n, err := store.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
