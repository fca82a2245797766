package evoline

import (
	"fmt"
	"math"
	"math/rand"
)

// NewRandomPopulation creates count unscored formulas with m and c drawn
// independently and uniformly from the bounds, rounded to the configured
// number of decimal places. A count of zero or less yields an empty
// population.
func NewRandomPopulation(rng *rand.Rand, bounds MCRange, places, count int) Population {
	if count <= 0 {
		return Population{}
	}
	pop := make(Population, count)
	for i := range pop {
		pop[i] = Formula{
			M: roundTo(uniform(rng, bounds.MinM, bounds.MaxM), places),
			C: roundTo(uniform(rng, bounds.MinC, bounds.MaxC), places),
		}
	}
	return pop
}

func uniform(rng *rand.Rand, minVal, maxVal float64) float64 {
	return minVal + rng.Float64()*(maxVal-minVal)
}

// Breed builds the next generation from an elite population.
//
// The child pool is the full cross product of the elite's m-values and
// c-values, deduplicated by (m, c). From it a without-replacement sample of
// min(poolSize, trunc(PopSize*(1-ImmigrationSize)) - eliteSize) children is
// drawn (never negative) and mutated. The remaining slots, including the
// whole immigration quota, are filled with fresh random formulas. The result
// must come out at exactly PopSize members; anything else means the
// hyperparameters cannot reconstruct the population and is fatal.
func Breed(rng *rand.Rand, elite Population, params *HyperParams) (Population, error) {
	pool := potentialChildren(elite)

	target := int(math.Min(
		float64(len(pool)),
		float64(params.PopSize)*(1-params.ImmigrationSize)-float64(len(elite)),
	))
	if target < 0 {
		target = 0
	}

	children := make(Population, 0, target)
	for _, idx := range rng.Perm(len(pool))[:target] {
		children = append(children, pool[idx])
	}
	mutated := Mutate(rng, children, params)

	immigrants := params.PopSize - (len(mutated) + len(elite))

	next := make(Population, 0, params.PopSize)
	next = append(next, elite...)
	next = append(next, mutated...)
	next = append(next, NewRandomPopulation(rng, params.Range, params.DecimalPlaces, immigrants)...)

	if len(next) != params.PopSize {
		return nil, fmt.Errorf("%w: bred population is length %d and required to be %d",
			ErrInvalidConfig, len(next), params.PopSize)
	}
	return next, nil
}

// potentialChildren materializes every distinct (m, c) crossover of the
// elite set: each member's m combined with each member's c, in both
// orientations. Pool order is deterministic so a seeded run draws the same
// children every time.
func potentialChildren(elite Population) Population {
	ms := make([]float64, len(elite))
	cs := make([]float64, len(elite))
	for i, f := range elite {
		ms[i] = f.M
		cs[i] = f.C
	}

	seen := make(map[mcKey]struct{}, len(ms)*len(cs))
	pool := make(Population, 0, len(ms)*len(cs))
	for _, m := range ms {
		for _, c := range cs {
			child := Formula{M: m, C: c}
			if _, ok := seen[child.key()]; ok {
				continue
			}
			seen[child.key()] = struct{}{}
			pool = append(pool, child)
		}
	}
	return pool
}

// Mutate perturbs each child independently with probability MutProb: a
// direction is drawn uniformly from {-1, 0, +1} by rounding a centered
// random value, then MutVal*direction is added to either m or c on a coin
// flip. The zero direction is a deliberate no-op branch that still consumes
// randomness and still resets the child's fitness.
//
// Every output is unscored, and identical (m, c) results are collapsed, so
// the returned count may be smaller than the input count.
func Mutate(rng *rand.Rand, children Population, params *HyperParams) Population {
	seen := make(map[mcKey]struct{}, len(children))
	mutated := make(Population, 0, len(children))

	for _, child := range children {
		out := Formula{M: child.M, C: child.C}
		if rng.Float64() < params.MutProb {
			direction := mutationDirection(rng)
			if rng.Float64() < 0.5 {
				out.M += params.MutVal * direction
			} else {
				out.C += params.MutVal * direction
			}
		}
		if _, ok := seen[out.key()]; ok {
			continue
		}
		seen[out.key()] = struct{}{}
		mutated = append(mutated, out)
	}
	return mutated
}

// mutationDirection draws uniformly from {-1, 0, +1} by rounding a random
// value centered on zero. A source value of exactly 0 lands on -1.5, which
// Go rounds away from zero to -2, so the result is clamped to the unit
// range.
func mutationDirection(rng *rand.Rand) float64 {
	direction := math.Round(rng.Float64()*3 - 1.5)
	if direction < -1 {
		direction = -1
	}
	return direction
}
