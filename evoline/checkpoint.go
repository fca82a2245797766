package evoline

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"
)

// engineSaveData holds the parts of an Engine worth persisting. The
// hyperparameters and dataset are not saved; the caller supplies them again
// on load, the same way the original config file is re-read for a resumed
// run.
type engineSaveData struct {
	Population Population
	Generation int
	Best       *Formula
}

// SaveCheckpoint writes the engine's current state to a gzip-compressed
// gob file so a long run can be resumed later.
func (e *Engine) SaveCheckpoint(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	saveData := engineSaveData{
		Population: e.Population,
		Generation: e.Generation,
		Best:       e.Best,
	}

	encoder := gob.NewEncoder(gzWriter)
	if err := encoder.Encode(saveData); err != nil {
		return fmt.Errorf("failed to encode engine state: %w", err)
	}
	return nil
}

// LoadCheckpoint restores an Engine from a checkpoint file. The dataset and
// hyperparameters must match the ones the checkpoint was written with; only
// the evolving state lives in the file.
//
// The random source is freshly seeded (from params.Seed, or the clock when
// zero), so a resumed run does not replay the exact draw sequence of an
// uninterrupted one.
func LoadCheckpoint(filePath string, data []DataPoint, params *HyperParams) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot resume: %w", ErrEmptyDataset)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for checkpoint: %w", err)
	}
	defer gzReader.Close()

	saveData := engineSaveData{}
	decoder := gob.NewDecoder(gzReader)
	if err := decoder.Decode(&saveData); err != nil {
		return nil, fmt.Errorf("failed to decode engine state from checkpoint: %w", err)
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		Params:     params,
		Data:       data,
		Population: saveData.Population,
		Generation: saveData.Generation,
		Best:       saveData.Best,
		Log:        slog.Default(),
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}
