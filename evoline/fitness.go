package evoline

import "math"

// Score computes a formula's total absolute residual error against the
// dataset: the sum over all points of |round(y - (m*x + c), places)|.
// Lower is strictly better; 0 is an exact fit at the given precision.
//
// Score is a pure function of (formula, data, places), which is what makes
// the skip-rescore optimization in ScorePopulation sound: a formula's
// coefficients uniquely determine its fitness.
func Score(f Formula, data []DataPoint, places int) float64 {
	total := 0.0
	for _, point := range data {
		total += math.Abs(roundTo(point.Y-f.Predict(point.X), places))
	}
	return total
}

// ScorePopulation returns a population in which every member carries a
// fitness. Members that were already scored, in this generation or an
// earlier one, are passed through unchanged.
func ScorePopulation(pop Population, data []DataPoint, params *HyperParams) Population {
	scored := make(Population, len(pop))
	for i, f := range pop {
		if !f.Scored {
			f.Fitness = Score(f, data, params.DecimalPlaces)
			f.Scored = true
		}
		scored[i] = f
	}
	return scored
}
