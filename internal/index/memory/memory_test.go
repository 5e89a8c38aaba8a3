package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"qa/internal/domain"
)

func seed(t *testing.T) *Index {
	t.Helper()
	ix := New()
	docs := []domain.Document{
		{ID: "D1", Content: "The Macintosh was developed by Apple in 1984."},
		{ID: "D2", Content: "Milan is a city in northern Italy."},
		{ID: "D3", Content: "Apple also developed the Lisa computer before the Macintosh."},
	}
	for _, d := range docs {
		require.NoError(t, ix.Add(d))
	}
	return ix
}

func TestSearchRanksByRelevance(t *testing.T) {
	ix := seed(t)
	got, err := ix.Search([]string{"developed", "macintosh", "computer"}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, d := range got {
		require.Greater(t, d.Score, 0.0)
	}
	// D3 matches all three query terms, D1 only two.
	require.Equal(t, "D3", got[0].ID)
}

func TestSearchEmptyTerms(t *testing.T) {
	ix := seed(t)
	got, err := ix.Search(nil, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSearchUnknownTerms(t *testing.T) {
	ix := seed(t)
	got, err := ix.Search([]string{"zebra"}, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestAddReplacesById(t *testing.T) {
	ix := seed(t)
	require.NoError(t, ix.Add(domain.Document{ID: "D1", Content: "Completely new content about zebras."}))

	count, err := ix.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)

	got, err := ix.Search([]string{"zebras"}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "D1", got[0].ID)
}

func TestSearchDeterministic(t *testing.T) {
	ix := seed(t)
	first, err := ix.Search([]string{"apple", "macintosh"}, 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ix.Search([]string{"apple", "macintosh"}, 0)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSearchLimit(t *testing.T) {
	ix := seed(t)
	got, err := ix.Search([]string{"macintosh"}, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
