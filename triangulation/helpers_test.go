package triangulation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/builder"
	"github.com/katalvlaran/lvpgm/core"
)

// pathOneToFour builds 1-2-3-4.
func pathOneToFour(t *testing.T) (*core.UndiGraph, core.DomainSizes) {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDOffset(1)}, builder.Path(4))
	require.NoError(t, err)

	return g, builder.Domains(g)
}

// fixture builds a seeded random graph with domains in [2,4].
func fixture(t *testing.T, seed int64, n int, p float64) (*core.UndiGraph, core.DomainSizes) {
	t.Helper()
	g, d, err := builder.BuildFixture(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformDomain(2, 4)},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return g, d
}

func set(ids ...core.NodeID) core.NodeSet { return core.NewNodeSet(ids...) }
