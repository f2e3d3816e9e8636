package scores

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(table []Entry) []string {
	out := make([]string, 0, len(table))
	for _, e := range table {
		out = append(out, e.Name)
	}
	return out
}

func TestInsertOrdering(t *testing.T) {
	cases := []struct {
		name   string
		table  []Entry
		add    Entry
		want   []string
		length int
	}{
		{
			name:   "empty",
			add:    Entry{Name: "ace", Score: 10},
			want:   []string{"ace"},
			length: 1,
		},
		{
			name:   "middle",
			table:  []Entry{{"a", 300}, {"c", 100}},
			add:    Entry{Name: "b", Score: 200},
			want:   []string{"a", "b", "c"},
			length: 3,
		},
		{
			name:   "tie_ranks_below_existing",
			table:  []Entry{{"first", 100}},
			add:    Entry{Name: "second", Score: 100},
			want:   []string{"first", "second"},
			length: 2,
		},
		{
			name:   "blank_name_and_negative_score",
			add:    Entry{Name: "  ", Score: -4},
			want:   []string{defaultName},
			length: 1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Insert(c.table, c.add)
			assert.Len(t, got, c.length)
			assert.Equal(t, c.want, names(got))
		})
	}
}

func TestInsertCapsTable(t *testing.T) {
	var table []Entry
	for i := 0; i < MaxEntries; i++ {
		table = Insert(table, Entry{Name: fmt.Sprintf("p%d", i), Score: (i + 1) * 10})
	}
	require.Len(t, table, MaxEntries)
	assert.Equal(t, 100, table[0].Score)
	assert.Equal(t, 10, table[MaxEntries-1].Score)

	assert.False(t, Qualifies(table, 10))
	assert.True(t, Qualifies(table, 11))

	table = Insert(table, Entry{Name: "late", Score: 5})
	require.Len(t, table, MaxEntries)
	assert.NotContains(t, names(table), "late")

	table = Insert(table, Entry{Name: "top", Score: 1000})
	require.Len(t, table, MaxEntries)
	assert.Equal(t, "top", table[0].Name)
	assert.Equal(t, 20, table[MaxEntries-1].Score)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	store, err := OpenSQLite(path)
	require.NoError(t, err)

	table, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, table)

	for i, score := range []int{50, 200, 50, 10} {
		_, err := store.Submit(Entry{Name: fmt.Sprintf("run%d", i), Score: score})
		require.NoError(t, err)
	}
	table, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"run1", "run0", "run2", "run3"}, names(table))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()
	for i := 0; i < MaxEntries; i++ {
		_, err := reopened.Submit(Entry{Name: "filler", Score: 1000 + i})
		require.NoError(t, err)
	}
	table, err = reopened.Load()
	require.NoError(t, err)
	assert.Len(t, table, MaxEntries)
	assert.Equal(t, 1009, table[0].Score)
}

func TestGDataStoreWithoutManager(t *testing.T) {
	store := NewGDataStore(nil)
	table, err := store.Submit(Entry{Name: "solo", Score: 42})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"solo", 42}}, table)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, table, loaded)
	assert.NoError(t, store.Close())
}

func TestGDataStorePersists(t *testing.T) {
	appName := fmt.Sprintf("starblaster_test_%d", time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			_ = os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})

	store := NewGDataStore(manager)
	_, err = store.Submit(Entry{Name: "low", Score: 5})
	require.NoError(t, err)
	_, err = store.Submit(Entry{Name: "high", Score: 500})
	require.NoError(t, err)

	again := NewGDataStore(manager)
	table, err := again.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "low"}, names(table))
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	_, err := Open("redis", "")
	assert.Error(t, err)

	store, err := Open("sqlite", filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
