package evoline

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// Population is one generation of candidate formulas. The engine replaces
// it wholesale each cycle; individual members are never mutated in place.
type Population []Formula

// Best returns the member with the lowest fitness among scored members,
// or nil if none has been scored.
func (p Population) Best() *Formula {
	var best *Formula
	for i := range p {
		if !p[i].Scored {
			continue
		}
		if best == nil || p[i].Fitness < best.Fitness {
			best = &p[i]
		}
	}
	return best
}

// fitnesses collects the fitness values of scored members.
func (p Population) fitnesses() []float64 {
	values := make([]float64, 0, len(p))
	for _, f := range p {
		if f.Scored {
			values = append(values, f.Fitness)
		}
	}
	return values
}

// Engine drives the generational loop: score, check for convergence,
// select, breed, replace. It owns the run's random source, seeded from
// HyperParams.Seed, so that every draw made by the factory, selector,
// breeder, and mutator happens in one explainable sequence.
type Engine struct {
	Params     *HyperParams
	Data       []DataPoint
	Population Population
	Generation int

	// Best is the best formula of the most recently scored generation.
	// It is not a global best-so-far: without full elitism the best
	// fitness may fluctuate between generations.
	Best *Formula

	// Log receives per-generation progress. Defaults to slog.Default().
	Log *slog.Logger

	rng *rand.Rand
}

// NewEngine validates the inputs and builds the initial random population.
func NewEngine(data []DataPoint, params *HyperParams) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot evolve: %w", ErrEmptyDataset)
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Engine{
		Params:     params,
		Data:       data,
		Population: NewRandomPopulation(rng, params.Range, params.DecimalPlaces, params.PopSize),
		Log:        slog.Default(),
		rng:        rng,
	}, nil
}

// RunGeneration executes a single evolutionary cycle. It returns the
// winning formula if one reaches fitness zero this generation, otherwise
// nil. On the final allowed cycle the population is reduced to the elite
// set without further breeding.
func (e *Engine) RunGeneration() (*Formula, error) {
	e.Generation++
	e.Log.Info("starting cycle",
		"generation", e.Generation,
		"cycles", e.Params.Cycles,
		"population", len(e.Population))

	scored := ScorePopulation(e.Population, e.Data, e.Params)
	e.Population = scored

	best := scored.Best()
	e.Best = best

	values := scored.fitnesses()
	e.Log.Info("generation scored",
		"generation", e.Generation,
		"best_m", best.M,
		"best_c", best.C,
		"best_fitness", best.Fitness,
		"mean_fitness", Mean(values))
	e.Log.Debug("fitness spread",
		"generation", e.Generation,
		"min", MinFloat(values),
		"max", MaxFloat(values),
		"stdev", Stdev(values))

	if best.Fitness == 0 {
		e.Log.Info("exact fit found", "generation", e.Generation, "formula", best.String())
		return best, nil
	}

	elite := SelectElite(e.rng, scored, e.Params)
	e.Log.Debug("elite selected", "generation", e.Generation, "elite", len(elite))

	if e.Generation < e.Params.Cycles {
		next, err := Breed(e.rng, elite, e.Params)
		if err != nil {
			return nil, fmt.Errorf("breeding failed in generation %d: %w", e.Generation, err)
		}
		e.Population = next
	} else {
		// Cycle budget spent: no point breeding a generation that will
		// never be scored.
		e.Population = elite
	}
	return nil, nil
}

// Run iterates until a formula fits the data exactly or the cycle budget is
// exhausted. It returns the best formula, the number of cycles actually
// used, and any fatal error from breeding.
func (e *Engine) Run() (Formula, int, error) {
	for e.Generation < e.Params.Cycles {
		winner, err := e.RunGeneration()
		if err != nil {
			return Formula{}, e.Generation, err
		}
		if winner != nil {
			return *winner, e.Generation, nil
		}
	}
	return *e.Population.Best(), e.Params.Cycles, nil
}

// Evolve is the one-shot entry point: it fits the dataset with a fresh
// engine and returns the best formula found and the cycles used.
func Evolve(data []DataPoint, params *HyperParams) (Formula, int, error) {
	engine, err := NewEngine(data, params)
	if err != nil {
		return Formula{}, 0, err
	}
	return engine.Run()
}
