package evoline

import "fmt"

// Formula is one candidate solution: the line y = M*x + C.
//
// A Formula is a value object. Fitness is meaningless until Scored is true;
// once set it is never invalidated except by constructing a new Formula
// (crossover and mutation always produce unscored formulas). Two formulas
// are the same individual when their (M, C) pair matches, regardless of
// whether either has been scored.
type Formula struct {
	M       float64
	C       float64
	Fitness float64
	Scored  bool
}

// mcKey identifies a formula by its coefficients, for set-style
// deduplication during breeding and mutation.
type mcKey struct {
	m, c float64
}

func (f Formula) key() mcKey {
	return mcKey{f.M, f.C}
}

// Predict evaluates the line at x.
func (f Formula) Predict(x float64) float64 {
	return f.M*x + f.C
}

func (f Formula) String() string {
	if !f.Scored {
		return fmt.Sprintf("y = %gx + %g (unscored)", f.M, f.C)
	}
	return fmt.Sprintf("y = %gx + %g (fitness %g)", f.M, f.C, f.Fitness)
}
