package evoline

import (
	"errors"
	"fmt"

	"gopkg.in/ini.v1"
)

// Errors returned by configuration validation and the evolution engine.
var (
	// ErrInvalidConfig marks hyperparameter bundles that cannot drive the
	// search, including ones that make exact population reconstruction
	// impossible during breeding.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyDataset marks an attempt to evolve against zero data points.
	ErrEmptyDataset = errors.New("dataset is empty")
)

// MCRange is the inclusive search space for freshly generated formulas,
// both the initial population and immigrants.
type MCRange struct {
	MinM float64 `ini:"min_m"`
	MaxM float64 `ini:"max_m"`
	MinC float64 `ini:"min_c"`
	MaxC float64 `ini:"max_c"`
}

// HyperParams is the immutable configuration bundle for one evolutionary
// run. The fraction fields are expressed relative to PopSize: each
// generation round(PopSize*GoldenSize) elites are selected, each tournament
// samples round(PopSize*TournamentSize) members, and ImmigrationSize of the
// next generation is replaced with fresh random formulas.
type HyperParams struct {
	Cycles          int     `ini:"cycles"`
	PopSize         int     `ini:"pop_size"`
	MutProb         float64 `ini:"mut_prob"`
	MutVal          float64 `ini:"mut_val"`
	DecimalPlaces   int     `ini:"decimal_places"`
	TournamentSize  float64 `ini:"tournament_size"`
	GoldenSize      float64 `ini:"golden_size"`
	ImmigrationSize float64 `ini:"immigration_size"`

	// Seed for the run's random source. 0 means derive one from the clock.
	Seed int64 `ini:"seed"`

	Range MCRange
}

// DefaultHyperParams returns the standard parameter set: 1000 cycles over a
// population of 100 with m and c searched in [0, 100] at one decimal place.
func DefaultHyperParams() *HyperParams {
	return &HyperParams{
		Cycles:          1000,
		PopSize:         100,
		MutProb:         0.01,
		MutVal:          0.05,
		DecimalPlaces:   1,
		TournamentSize:  0.08,
		GoldenSize:      0.4,
		ImmigrationSize: 0.2,
		Range:           MCRange{MinM: 0, MaxM: 100, MinC: 0, MaxC: 100},
	}
}

// LoadConfig loads hyperparameters from an INI file with [Evolution] and
// [Range] sections. Keys absent from the file keep their default values.
func LoadConfig(filePath string) (*HyperParams, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	params := DefaultHyperParams()
	if err := cfg.Section("Evolution").MapTo(params); err != nil {
		return nil, fmt.Errorf("failed to map [Evolution] section: %w", err)
	}
	if err := cfg.Section("Range").MapTo(&params.Range); err != nil {
		return nil, fmt.Errorf("failed to map [Range] section: %w", err)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// Validate checks every field against its documented range. It also rejects
// golden/immigration combinations that could never rebuild a population of
// exactly PopSize, which would otherwise surface as a fatal error mid-run.
func (p *HyperParams) Validate() error {
	if p.Cycles < 1 {
		return fmt.Errorf("%w: cycles must be >= 1, got %d", ErrInvalidConfig, p.Cycles)
	}
	if p.PopSize < 1 {
		return fmt.Errorf("%w: pop_size must be >= 1, got %d", ErrInvalidConfig, p.PopSize)
	}
	if p.MutProb <= 0 || p.MutProb > 1 {
		return fmt.Errorf("%w: mut_prob must be in (0,1], got %g", ErrInvalidConfig, p.MutProb)
	}
	if p.MutVal < 0 {
		return fmt.Errorf("%w: mut_val cannot be negative, got %g", ErrInvalidConfig, p.MutVal)
	}
	if p.DecimalPlaces < 0 {
		return fmt.Errorf("%w: decimal_places cannot be negative, got %d", ErrInvalidConfig, p.DecimalPlaces)
	}
	if p.TournamentSize <= 0 || p.TournamentSize > 1 {
		return fmt.Errorf("%w: tournament_size must be in (0,1], got %g", ErrInvalidConfig, p.TournamentSize)
	}
	if p.GoldenSize <= 0 || p.GoldenSize > 1 {
		return fmt.Errorf("%w: golden_size must be in (0,1], got %g", ErrInvalidConfig, p.GoldenSize)
	}
	if p.ImmigrationSize <= 0 || p.ImmigrationSize > 1 {
		return fmt.Errorf("%w: immigration_size must be in (0,1], got %g", ErrInvalidConfig, p.ImmigrationSize)
	}
	if p.Range.MaxM < p.Range.MinM {
		return fmt.Errorf("%w: max_m cannot be less than min_m", ErrInvalidConfig)
	}
	if p.Range.MaxC < p.Range.MinC {
		return fmt.Errorf("%w: max_c cannot be less than min_c", ErrInvalidConfig)
	}
	if p.eliteCount() < 1 {
		return fmt.Errorf("%w: golden_size %g of pop_size %d rounds to an empty elite",
			ErrInvalidConfig, p.GoldenSize, p.PopSize)
	}
	if p.eliteCount() > p.PopSize {
		return fmt.Errorf("%w: golden_size %g selects more members than pop_size %d",
			ErrInvalidConfig, p.GoldenSize, p.PopSize)
	}
	return nil
}

// eliteCount is the selection target: round(PopSize * GoldenSize).
func (p *HyperParams) eliteCount() int {
	return roundInt(float64(p.PopSize) * p.GoldenSize)
}

// tournamentCount is the per-tournament sample size, clamped to at least
// one so a tiny tournament_size cannot request an empty sample.
func (p *HyperParams) tournamentCount() int {
	n := roundInt(float64(p.PopSize) * p.TournamentSize)
	if n < 1 {
		n = 1
	}
	return n
}
