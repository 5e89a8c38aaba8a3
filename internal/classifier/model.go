package classifier

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"qa/internal/domain"
)

// modelVersion is bumped whenever the encoded layout of the training info
// changes. Loading an artifact written with a different version fails with
// ErrIncompatibleModel rather than silently degrading.
const modelVersion = 1

// ErrIncompatibleModel marks an artifact written by a different model
// format version. Distinguishable from a missing file (os.ErrNotExist).
var ErrIncompatibleModel = errors.New("incompatible classifier model version")

// SaveModel writes the training info to path, creating parent directories
// and overwriting any previous artifact. Training always regenerates the
// artifact from scratch.
func SaveModel(path string, info *domain.ClassifierTrainingInfo) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating model directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating model file: %w", err)
	}
	defer f.Close()
	enc := gob.NewEncoder(f)
	if err := enc.Encode(modelVersion); err != nil {
		return fmt.Errorf("encoding model version: %w", err)
	}
	if err := enc.Encode(info); err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	return f.Sync()
}

// LoadModel reads a persisted training info. A missing file surfaces as
// os.ErrNotExist; a version mismatch as ErrIncompatibleModel; any other
// decode failure as a wrapped corruption error.
func LoadModel(path string) (*domain.ClassifierTrainingInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := gob.NewDecoder(f)
	var version int
	if err := dec.Decode(&version); err != nil {
		return nil, fmt.Errorf("decoding model version: %w", err)
	}
	if version != modelVersion {
		return nil, fmt.Errorf("%w: artifact v%d, want v%d", ErrIncompatibleModel, version, modelVersion)
	}
	var info domain.ClassifierTrainingInfo
	if err := dec.Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	return &info, nil
}
