package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"qa/internal/domain"
)

func open(t *testing.T) *Index {
	t.Helper()
	ix, err := Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestAddAndSearch(t *testing.T) {
	ix := open(t)
	require.NoError(t, ix.Add(domain.Document{ID: "D1", Content: "The Macintosh was developed by Apple in 1984."}))
	require.NoError(t, ix.Add(domain.Document{ID: "D2", Content: "Milan is a city in northern Italy."}))

	got, err := ix.Search([]string{"apple", "macintosh"}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "D1", got[0].ID)
	require.Greater(t, got[0].Score, 0.0)
}

func TestAddReplacesById(t *testing.T) {
	ix := open(t)
	require.NoError(t, ix.Add(domain.Document{ID: "D1", Content: "old content"}))
	require.NoError(t, ix.Add(domain.Document{ID: "D1", Content: "fresh words about zebras"}))

	count, err := ix.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	got, err := ix.Search([]string{"zebras"}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSearchEmptyTerms(t *testing.T) {
	ix := open(t)
	require.NoError(t, ix.Add(domain.Document{ID: "D1", Content: "anything"}))

	got, err := ix.Search(nil, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.db")
	ix, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, ix.Add(domain.Document{ID: "D1", Content: "The Macintosh was developed by Apple."}))
	require.NoError(t, ix.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
