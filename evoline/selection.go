package evoline

import "math/rand"

// SelectElite reduces a scored population to its golden set via repeated
// tournament selection.
//
// It runs round(PopSize*GoldenSize) tournaments. Each tournament draws a
// without-replacement sample of round(PopSize*TournamentSize) members
// (clamped to at least one) from the full population and keeps the member
// with the lowest fitness. Tournaments draw independently, so the same
// individual can win more than once and appear repeatedly in the elite.
func SelectElite(rng *rand.Rand, pop Population, params *HyperParams) Population {
	winners := params.eliteCount()
	sample := params.tournamentCount()
	if sample > len(pop) {
		sample = len(pop)
	}

	elite := make(Population, 0, winners)
	for i := 0; i < winners; i++ {
		elite = append(elite, tournament(rng, pop, sample))
	}
	return elite
}

// tournament samples size members without replacement and returns the one
// with the lowest fitness. Ties go to whichever minimum the sample order
// reaches first.
func tournament(rng *rand.Rand, pop Population, size int) Formula {
	indices := rng.Perm(len(pop))[:size]

	best := pop[indices[0]]
	for _, idx := range indices[1:] {
		if pop[idx].Fitness < best.Fitness {
			best = pop[idx]
		}
	}
	return best
}
