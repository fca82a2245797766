// Package evoline fits a straight line y = m*x + c to a set of (x, y)
// observations using a genetic algorithm instead of a closed-form
// least-squares solve.
//
// The search keeps a fixed-size population of candidate formulas. Each
// generation the population is scored against the dataset, reduced to an
// elite set by tournament selection, and rebuilt from crossovers of the
// elite's m and c values, stochastic mutations, and a fraction of fresh
// random immigrants. The loop stops when a candidate fits the data exactly
// (at the configured decimal precision) or the cycle budget runs out.
//
// Basic usage:
//
//	data, err := evoline.LoadData("observations.csv")
//	if err != nil {
//		log.Fatalf("Error loading data: %v", err)
//	}
//
//	params := evoline.DefaultHyperParams()
//	params.Cycles = 500
//
//	best, cycles, err := evoline.Evolve(data, params)
//	if err != nil {
//		log.Fatalf("Evolution failed: %v", err)
//	}
//	fmt.Printf("y = %gx + %g (fitness %g, %d cycles)\n", best.M, best.C, best.Fitness, cycles)
package evoline
