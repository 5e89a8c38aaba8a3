package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "memory", cfg.Index.Type)
	require.Equal(t, "classifier.model", cfg.ModelPath)
	require.Equal(t, 3, cfg.Passages.SentencesPerPassage)
	require.Equal(t, 5, cfg.Search.MaxCandidates)
	require.Empty(t, cfg.DocumentPath, "no corpus path by default; stages report it when required")
}

func TestLoadAppliesDefaultsToPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qa.yaml")
	partial := `document_path: ./corpus
index:
  type: sqlite
`
	require.NoError(t, os.WriteFile(path, []byte(partial), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./corpus", cfg.DocumentPath)
	require.Equal(t, "sqlite", cfg.Index.Type)
	require.NotNil(t, cfg.Index.SQLite)
	require.NotEmpty(t, cfg.Index.SQLite.Path)
	require.Equal(t, 3, cfg.Passages.SentencesPerPassage)
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestLoadUnreadablePathFallsBackToDefaults(t *testing.T) {
	// A directory is readable as a path but not as a file.
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "qa.yaml")
	cfg := &AppConfig{
		DocumentPath: "/srv/corpus",
		TrainingPath: "/srv/train.txt",
		ModelPath:    "/srv/classifier.model",
		Index:        IndexConfig{Type: "memory"},
		Passages:     PassagesConfig{SentencesPerPassage: 4, OverlapSentences: 2},
		Search:       SearchConfig{MaxCandidates: 7},
		Results:      ResultsConfig{Limit: 3},
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}
