package schedule_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/schedule"
	"github.com/katalvlaran/lvpgm/tensor"
)

// chainFixture builds the variables and random factors of a chain
// v0 - v1 - ... - vn where factor i covers (v_i, v_i+1).
func chainFixture(t *testing.T, seed int64, n int) ([]*tensor.Variable, []tensor.Table) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vars := make([]*tensor.Variable, n+1)
	for i := range vars {
		vars[i] = tensor.NewRangeVariable("v", 2+rng.Intn(2))
	}
	factors := make([]tensor.Table, n)
	for i := range factors {
		size := vars[i].DomainSize() * vars[i+1].DomainSize()
		vals := make([]float64, size)
		for j := range vals {
			vals[j] = 0.5 + rng.Float64()
		}
		d, err := tensor.NewDenseFrom(vals, vars[i], vars[i+1])
		require.NoError(t, err)
		factors[i] = d
	}
	return vars, factors
}

// eliminationSchedule sums every chain variable out but the last, deleting
// intermediate products once projected, and stores the final marginal.
func eliminationSchedule(t *testing.T, vars []*tensor.Variable, factors []tensor.Table, sink schedule.Sink) (*schedule.Schedule, *schedule.Operator) {
	t.Helper()
	s := schedule.New()
	var msg *schedule.MultiDim
	var last *schedule.Operator
	for i, f := range factors {
		fd, err := s.InsertTable(f)
		require.NoError(t, err)
		cur := fd
		if msg != nil {
			comb, err := s.EmplaceBinaryCombination(msg, fd, tensor.Mul)
			require.NoError(t, err)
			_, err = s.EmplaceDeletion(msg)
			require.NoError(t, err)
			cur = comb.Result()
		}
		proj, err := s.EmplaceProjection(cur, []*tensor.Variable{vars[i]}, tensor.Sum)
		require.NoError(t, err)
		if cur != fd {
			_, err = s.EmplaceDeletion(cur)
			require.NoError(t, err)
		}
		msg = proj.Result()
		last = proj
	}
	_, err := s.EmplaceStorage(msg, sink)
	require.NoError(t, err)
	return s, last
}

// fanFixture builds independent products of random factor pairs, all
// stored, so the DAG has wide parallel layers.
func fanFixture(t *testing.T, seed int64, width int, sink schedule.Sink) *schedule.Schedule {
	t.Helper()
	vars, factors := chainFixture(t, seed, 2*width)
	s := schedule.New()
	for i := 0; i+1 < len(factors); i += 2 {
		a, err := s.InsertTable(factors[i])
		require.NoError(t, err)
		b, err := s.InsertTable(factors[i+1])
		require.NoError(t, err)
		ab, err := s.EmplaceBinaryCombination(a, b, tensor.Mul)
		require.NoError(t, err)
		p, err := s.EmplaceProjection(ab.Result(), []*tensor.Variable{vars[i+1]}, tensor.MaxReduce)
		require.NoError(t, err)
		_, err = s.EmplaceDeletion(ab.Result())
		require.NoError(t, err)
		_, err = s.EmplaceStorage(p.Result(), sink)
		require.NoError(t, err)
	}
	return s
}
