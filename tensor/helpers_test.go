package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/tensor"
)

// bin returns a binary variable.
func bin(name string) *tensor.Variable { return tensor.NewRangeVariable(name, 2) }

// dense builds a Dense tensor or fails the test.
func dense(t *testing.T, values []float64, scope ...*tensor.Variable) *tensor.Tensor {
	t.Helper()
	x, err := tensor.NewFrom(values, scope...)
	require.NoError(t, err)
	return x
}

// randomValues returns n values in [1,2) from a seeded source.
func randomValues(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1 + rng.Float64()
	}
	return out
}

// assign builds an instantiation with the given values.
func assign(t *testing.T, vars []*tensor.Variable, vals ...int) *tensor.Instantiation {
	t.Helper()
	in := tensor.NewInstantiation(vars...)
	for i, v := range vars {
		require.NoError(t, in.Chg(v, vals[i]))
	}
	return in
}
