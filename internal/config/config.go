// Package config loads the application configuration from YAML.
package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// IndexConfig selects and configures the corpus index implementation.
type IndexConfig struct {
	Type   string        `yaml:"type"`
	SQLite *SQLiteConfig `yaml:"sqlite,omitempty"`
}

// SQLiteConfig holds the database location for the persistent index.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// PassagesConfig configures how documents are segmented into passages.
type PassagesConfig struct {
	SentencesPerPassage int `yaml:"sentences_per_passage"`
	OverlapSentences    int `yaml:"overlap_sentences"`
}

// SearchConfig bounds candidate generation.
type SearchConfig struct {
	MaxCandidates int `yaml:"max_candidates"`
}

// ClassifierConfig tunes question classification.
type ClassifierConfig struct {
	MinConfidence float64 `yaml:"min_confidence"`
}

// ResultsConfig bounds the per-question output.
type ResultsConfig struct {
	Limit int `yaml:"limit"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	DocumentPath string           `yaml:"document_path"`
	TrainingPath string           `yaml:"training_path"`
	ModelPath    string           `yaml:"model_path"`
	Index        IndexConfig      `yaml:"index"`
	Passages     PassagesConfig   `yaml:"passages"`
	Search       SearchConfig     `yaml:"search"`
	Classifier   ClassifierConfig `yaml:"classifier"`
	Results      ResultsConfig    `yaml:"results"`
}

// Load reads a config from the specified path. Configuration problems are
// never fatal: a missing file silently yields defaults, and an unreadable
// or malformed file logs a warning and yields defaults, so the tool keeps
// running with empty settings. Downstream stages surface missing paths as
// their own contract violations.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("config %s unreadable, using defaults: %v", path, err)
		}
		return defaultConfig(), nil
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("config %s malformed, using defaults: %v", path, err)
		return defaultConfig(), nil
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./qa.yaml first, then ~/.config/qa/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "qa.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qa", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		ModelPath: "classifier.model",
		Index:     IndexConfig{Type: "memory"},
		Passages:  PassagesConfig{SentencesPerPassage: 3, OverlapSentences: 1},
		Search:    SearchConfig{MaxCandidates: 5},
		Results:   ResultsConfig{Limit: 10},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.ModelPath == "" {
		cfg.ModelPath = "classifier.model"
	}
	if cfg.Index.Type == "" {
		cfg.Index.Type = "memory"
	}
	if cfg.Index.Type == "sqlite" {
		if cfg.Index.SQLite == nil {
			cfg.Index.SQLite = &SQLiteConfig{}
		}
		if cfg.Index.SQLite.Path == "" {
			cfg.Index.SQLite.Path = filepath.Join("data", "index.db")
		}
	}
	if cfg.Passages.SentencesPerPassage == 0 {
		cfg.Passages.SentencesPerPassage = 3
	}
	if cfg.Search.MaxCandidates == 0 {
		cfg.Search.MaxCandidates = 5
	}
	if cfg.Results.Limit == 0 {
		cfg.Results.Limit = 10
	}
}
