package evoline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.0, roundTo(1.04, 1))
	assert.Equal(t, 1.1, roundTo(1.05, 1))
	assert.Equal(t, -2.0, roundTo(-1.5, 0))
	assert.Equal(t, 3.14, roundTo(3.14159, 2))
	assert.Equal(t, 7.0, roundTo(7, 3))
}

func TestRoundInt(t *testing.T) {
	assert.Equal(t, 0, roundInt(0.4))
	assert.Equal(t, 1, roundInt(0.5))
	assert.Equal(t, -1, roundInt(-0.5))
	assert.Equal(t, 40, roundInt(100*0.4))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Mean(nil), "empty input means zero, not NaN")
}

func TestStdev(t *testing.T) {
	// Sample standard deviation of {2, 4, 4, 4, 5, 5, 7, 9}.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.138, Stdev(values), 0.001)

	assert.Equal(t, 0.0, Stdev([]float64{3}), "undefined below two values")
	assert.Equal(t, 0.0, Stdev(nil))
}

func TestMinMaxFloat(t *testing.T) {
	values := []float64{3, -1, 7, 0}
	assert.Equal(t, -1.0, MinFloat(values))
	assert.Equal(t, 7.0, MaxFloat(values))

	assert.Equal(t, math.Inf(1), MinFloat(nil))
	assert.Equal(t, math.Inf(-1), MaxFloat(nil))
}
