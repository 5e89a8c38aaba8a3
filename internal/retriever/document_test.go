package retriever

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"qa/internal/index/memory"
)

func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"D1.txt":     "The Macintosh was developed by Apple in 1984.",
		"D2.txt":     "Milan is a city in northern Italy.",
		"notes.md":   "should be ignored, not a txt file",
		"empty.json": "{}",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestGetDocumentsBeforeSetupFailsFast(t *testing.T) {
	d := NewDocuments(0)
	_, err := d.GetDocuments([]string{"apple"})
	require.ErrorIs(t, err, ErrNotReady)

	// Indexer set but corpus never imported: still not ready.
	d.SetIndexer(memory.New())
	_, err = d.GetDocuments([]string{"apple"})
	require.ErrorIs(t, err, ErrNotReady)
}

func TestImportBeforeSetIndexerFailsFast(t *testing.T) {
	d := NewDocuments(0)
	require.ErrorIs(t, d.ImportDocuments(writeCorpus(t)), ErrNotReady)
}

func TestImportAndQuery(t *testing.T) {
	ix := memory.New()
	d := NewDocuments(0)
	d.SetIndexer(ix)
	require.NoError(t, d.ImportDocuments(writeCorpus(t)))

	count, err := ix.Count()
	require.NoError(t, err)
	require.Equal(t, 2, count, "only .txt files belong to the corpus")

	docs, err := d.GetDocuments([]string{"apple", "macintosh"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "D1", docs[0].ID)
}

func TestImportIdempotent(t *testing.T) {
	ix := memory.New()
	d := NewDocuments(0)
	d.SetIndexer(ix)
	dir := writeCorpus(t)

	require.NoError(t, d.ImportDocuments(dir))
	require.NoError(t, d.ImportDocuments(dir))

	count, err := ix.Count()
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestGetDocumentsEmptyTerms(t *testing.T) {
	d := NewDocuments(0)
	d.SetIndexer(memory.New())
	require.NoError(t, d.ImportDocuments(writeCorpus(t)))

	docs, err := d.GetDocuments(nil)
	require.NoError(t, err)
	require.Empty(t, docs, "empty terms must not return the whole corpus")
}

func TestImportEmptyPath(t *testing.T) {
	d := NewDocuments(0)
	d.SetIndexer(memory.New())
	require.Error(t, d.ImportDocuments(""))
}

func TestImportNoDocuments(t *testing.T) {
	d := NewDocuments(0)
	d.SetIndexer(memory.New())
	require.Error(t, d.ImportDocuments(t.TempDir()))
}

func TestGetDocumentsSubsetOfCorpus(t *testing.T) {
	ix := memory.New()
	d := NewDocuments(0)
	d.SetIndexer(ix)
	require.NoError(t, d.ImportDocuments(writeCorpus(t)))

	docs, err := d.GetDocuments([]string{"milan", "apple", "city"})
	require.NoError(t, err)
	for _, doc := range docs {
		require.Contains(t, []string{"D1", "D2"}, doc.ID)
	}
}
