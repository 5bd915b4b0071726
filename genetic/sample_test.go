package genetic_test

import (
	"testing"

	"github.com/katalvlaran/ttp/genetic"
	"github.com/katalvlaran/ttp/ttp"
	"github.com/stretchr/testify/require"
)

func TestRandomPopulation_ValidAndReproducible(t *testing.T) {
	const size, n = 16, 12
	pop, err := genetic.RandomPopulation(genetic.NewRNG(seedDet), size, n, 0.4)
	require.NoError(t, err)
	require.Len(t, pop, size)
	for _, c := range pop {
		require.NoError(t, c.Validate(n))
	}

	again, err := genetic.RandomPopulation(genetic.NewRNG(seedDet), size, n, 0.4)
	require.NoError(t, err)
	require.Equal(t, pop, again)

	other, err := genetic.RandomPopulation(genetic.NewRNG(seedDet+1), size, n, 0.4)
	require.NoError(t, err)
	require.NotEqual(t, pop, other)
}

func TestRandomPlan_PickProbabilityBounds(t *testing.T) {
	none, err := genetic.RandomPlan(nil, 50, 0)
	require.NoError(t, err)
	require.Zero(t, none.Picked())

	all, err := genetic.RandomPlan(nil, 50, 1)
	require.NoError(t, err)
	require.Equal(t, 50, all.Picked())

	_, err = genetic.RandomPlan(nil, 5, 2)
	require.ErrorIs(t, err, ttp.ErrInvalidInput)
	_, err = genetic.RandomPlan(nil, 0, 0.5)
	require.ErrorIs(t, err, ttp.ErrInvalidInput)
}

func TestRandomTour_Errors(t *testing.T) {
	_, err := genetic.RandomTour(nil, 0)
	require.ErrorIs(t, err, ttp.ErrInvalidInput)

	_, err = genetic.RandomPopulation(nil, -1, 3, 0.5)
	require.ErrorIs(t, err, ttp.ErrInvalidInput)
}

func TestDeriveRNG_IndependentDeterministicStreams(t *testing.T) {
	a := genetic.DeriveRNG(genetic.NewRNG(10), 0)
	b := genetic.DeriveRNG(genetic.NewRNG(10), 0)
	require.Equal(t, a.Int63(), b.Int63())

	base := genetic.NewRNG(10)
	s0 := genetic.DeriveRNG(base, 0)
	s1 := genetic.DeriveRNG(base, 1)
	require.NotEqual(t, s0.Int63(), s1.Int63())

	// nil base uses DefaultSeed as parent
	n1 := genetic.DeriveRNG(nil, 4)
	n2 := genetic.DeriveRNG(nil, 4)
	require.Equal(t, n1.Int63(), n2.Int63())
}

func TestChromosomeClone(t *testing.T) {
	c := genetic.Chromosome{Tour: ttp.Tour{1, 2}, Plan: ttp.PackingPlan{true, false}}
	d := c.Clone()
	d.Tour[0], d.Plan[0] = 2, false
	require.Equal(t, 1, c.Tour[0])
	require.True(t, c.Plan[0])
	require.Equal(t, 2, c.Dimension())
}
