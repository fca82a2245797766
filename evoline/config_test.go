package evoline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHyperParams_Valid(t *testing.T) {
	assert.NoError(t, DefaultHyperParams().Validate())
}

func TestValidate_RejectsOutOfRangeFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*HyperParams)
	}{
		{"zero cycles", func(p *HyperParams) { p.Cycles = 0 }},
		{"zero population", func(p *HyperParams) { p.PopSize = 0 }},
		{"zero mutation probability", func(p *HyperParams) { p.MutProb = 0 }},
		{"mutation probability above one", func(p *HyperParams) { p.MutProb = 1.5 }},
		{"negative mutation value", func(p *HyperParams) { p.MutVal = -1 }},
		{"negative decimal places", func(p *HyperParams) { p.DecimalPlaces = -1 }},
		{"zero tournament size", func(p *HyperParams) { p.TournamentSize = 0 }},
		{"tournament size above one", func(p *HyperParams) { p.TournamentSize = 1.1 }},
		{"zero golden size", func(p *HyperParams) { p.GoldenSize = 0 }},
		{"golden selection rounds to empty", func(p *HyperParams) { p.PopSize = 1; p.GoldenSize = 0.4 }},
		{"zero immigration size", func(p *HyperParams) { p.ImmigrationSize = 0 }},
		{"inverted m range", func(p *HyperParams) { p.Range.MinM = 10; p.Range.MaxM = 5 }},
		{"inverted c range", func(p *HyperParams) { p.Range.MinC = 10; p.Range.MaxC = 5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := DefaultHyperParams()
			tc.mutate(params)
			assert.ErrorIs(t, params.Validate(), ErrInvalidConfig)
		})
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evoline.ini")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `
[Evolution]
cycles = 250
pop_size = 80
mut_prob = 0.05
mut_val = 0.1
decimal_places = 2
tournament_size = 0.1
golden_size = 0.3
immigration_size = 0.25
seed = 99

[Range]
min_m = -5
max_m = 5
min_c = -1
max_c = 1
`)

	params, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 250, params.Cycles)
	assert.Equal(t, 80, params.PopSize)
	assert.Equal(t, 0.05, params.MutProb)
	assert.Equal(t, 0.1, params.MutVal)
	assert.Equal(t, 2, params.DecimalPlaces)
	assert.Equal(t, 0.1, params.TournamentSize)
	assert.Equal(t, 0.3, params.GoldenSize)
	assert.Equal(t, 0.25, params.ImmigrationSize)
	assert.Equal(t, int64(99), params.Seed)
	assert.Equal(t, MCRange{MinM: -5, MaxM: 5, MinC: -1, MaxC: 1}, params.Range)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[Evolution]
cycles = 42
`)

	params, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 42, params.Cycles)

	defaults := DefaultHyperParams()
	assert.Equal(t, defaults.PopSize, params.PopSize)
	assert.Equal(t, defaults.MutProb, params.MutProb)
	assert.Equal(t, defaults.Range, params.Range)
}

func TestLoadConfig_InvalidValuesRejected(t *testing.T) {
	path := writeConfig(t, `
[Evolution]
pop_size = 0
`)

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}
