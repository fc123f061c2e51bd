package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profdemo/internal/runner"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStore_SaveAndRecent(t *testing.T) {
	s, _ := openTestStore(t)

	report := runner.Report{Entries: []runner.Entry{
		{Benchmark: "fib-recursive", Best: 12 * time.Millisecond, Repetitions: 100},
		{Benchmark: "fib-iterative", Best: 3 * time.Microsecond, Repetitions: 100},
	}}
	require.NoError(t, s.Save(report))

	rows, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest first: the second insert comes back on top.
	assert.Equal(t, "fib-iterative", rows[0].Benchmark)
	assert.Equal(t, 3*time.Microsecond, rows[0].Best)
	assert.Equal(t, 100, rows[0].Repetitions)
	assert.Equal(t, "fib-recursive", rows[1].Benchmark)
	assert.False(t, rows[0].CreatedAt.IsZero())

	// Entries of one report share a timestamp.
	assert.Equal(t, rows[0].CreatedAt, rows[1].CreatedAt)
}

func TestStore_RecentLimit(t *testing.T) {
	s, _ := openTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(runner.Report{Entries: []runner.Entry{
			{Benchmark: "matrix-mul", Best: time.Millisecond, Repetitions: 10},
		}}))
	}

	rows, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestStore_EmptyDatabase(t *testing.T) {
	s, _ := openTestStore(t)

	rows, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(runner.Report{Entries: []runner.Entry{
		{Benchmark: "string-concat", Best: time.Millisecond, Repetitions: 50},
	}}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	rows, err := s2.Recent(10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "string-concat", rows[0].Benchmark)
}
