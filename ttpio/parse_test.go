package ttpio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/ttp/matrix"
	"github.com/katalvlaran/ttp/ttp"
	"github.com/katalvlaran/ttp/ttpio"
	"github.com/stretchr/testify/require"
)

const fixture = "testdata/test-example-n4.ttp"

// euc2D is the fixture with plain Euclidean distances and shuffled header keys.
const euc2D = `KNAPSACK DATA TYPE: uncorrelated
PROBLEM NAME: test-example-n4
DIMENSION: 4
CAPACITY OF KNAPSACK: 10
NUMBER OF ITEMS: 3
MIN SPEED: 0.1
MAX SPEED: 1
RENTING RATIO: 1.0
COMMENT: ignored
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION (INDEX, X, Y):
4 4 3
1 1 1
2 2 2
3 3 1

ITEMS SECTION (INDEX, PROFIT, WEIGHT, ASSIGNED NODE NUMBER):
1 10 5 2
2 0 0 3
3 7 3 4
EOF
`

func TestParseFile_Fixture(t *testing.T) {
	p, err := ttpio.ParseFile(fixture)
	require.NoError(t, err)

	inst := p.Instance
	require.Equal(t, "test-example-n4", inst.Name)
	require.Equal(t, "uncorrelated", inst.KnapsackDataType)
	require.Equal(t, ttpio.EdgeCeil2D, inst.EdgeWeightType)
	require.Equal(t, 4, inst.Dimension)
	require.Equal(t, 10.0, inst.Capacity)
	require.Equal(t, 0.1, inst.MinSpeed)
	require.Equal(t, 1.0, inst.MaxSpeed)
	require.Equal(t, 1.0, inst.RentingRatio)
	require.Equal(t, []ttp.Item{
		{Index: 1, Profit: 10, Weight: 5, City: 2},
		{Index: 2, Profit: 0, Weight: 0, City: 3},
		{Index: 3, Profit: 7, Weight: 3, City: 4},
	}, inst.Items)
	require.Equal(t, []matrix.Point{{1, 1}, {2, 2}, {3, 1}, {4, 3}}, p.Coords)

	// CEIL_2D rounds every distance up.
	want := [][]float64{
		{0, 2, 2, 4},
		{2, 0, 2, 3},
		{2, 2, 0, 3},
		{4, 3, 3, 0},
	}
	for i := range want {
		row, err := p.Distances.Row(i)
		require.NoError(t, err)
		require.Equal(t, want[i], row, "row %d", i)
	}
}

func TestParse_EuclideanMatchesEvaluator(t *testing.T) {
	p, err := ttpio.Parse(strings.NewReader(euc2D))
	require.NoError(t, err)
	require.Equal(t, []matrix.Point{{1, 1}, {2, 2}, {3, 1}, {4, 3}}, p.Coords)

	d, err := p.Distances.At(0, 3)
	require.NoError(t, err)
	require.InDelta(t, 3.605551275463989, d, 1e-12)

	ev, err := p.Evaluator()
	require.NoError(t, err)
	res, err := ev.Evaluate(ttp.Tour{1, 3, 2, 4}, ttp.PackingPlan{true, false, true, false})
	require.NoError(t, err)
	require.InDelta(t, 10.5894, res.TotalTime, 1e-4)
	require.Equal(t, 7.0, res.TotalProfit)
}

func TestParseFile_ExactDistancesOnCeilFile(t *testing.T) {
	p, err := ttpio.ParseFile(fixture, ttpio.WithExactDistances(), nil)
	require.NoError(t, err)
	require.Equal(t, ttpio.EdgeCeil2D, p.Instance.EdgeWeightType)

	d, err := p.Distances.At(0, 3)
	require.NoError(t, err)
	require.InDelta(t, 3.605551275463989, d, 1e-12)

	ev, err := p.Evaluator()
	require.NoError(t, err)
	res, err := ev.Evaluate(ttp.Tour{1, 3, 2, 4}, ttp.PackingPlan{true, false, true, false})
	require.NoError(t, err)
	require.InDelta(t, 10.5894, res.TotalTime, 1e-4)
	require.InDelta(t, -3.5894, ev.Net(res), 1e-4)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ttpio.ParseFile(filepath.Join(t.TempDir(), "nope.ttp"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	head := "DIMENSION: 2\nNUMBER OF ITEMS: 1\nCAPACITY OF KNAPSACK: 5\nMIN SPEED: 0.1\nMAX SPEED: 1\nRENTING RATIO: 1\n"
	nodes := "NODE_COORD_SECTION\n1 0 0\n2 3 4\n"
	items := "ITEMS SECTION\n1 1 1 2\n"

	cases := []struct {
		name  string
		input string
		want  error
	}{
		{name: "no sections", input: head, want: ttpio.ErrMissingField},
		{name: "missing capacity", input: strings.Replace(head, "CAPACITY OF KNAPSACK: 5\n", "", 1) + nodes + items, want: ttpio.ErrMissingField},
		{name: "header without colon", input: "DIMENSION 2\n" + head + nodes + items, want: ttpio.ErrSyntax},
		{name: "bad number", input: strings.Replace(head, "MIN SPEED: 0.1", "MIN SPEED: slow", 1) + nodes + items, want: ttpio.ErrSyntax},
		{name: "zero dimension", input: strings.Replace(head, "DIMENSION: 2", "DIMENSION: 0", 1) + nodes + items, want: ttpio.ErrSyntax},
		{name: "short node row", input: head + "NODE_COORD_SECTION\n1 0\n2 3 4\n" + items, want: ttpio.ErrSyntax},
		{name: "node out of range", input: head + "NODE_COORD_SECTION\n1 0 0\n3 3 4\n" + items, want: ttpio.ErrSyntax},
		{name: "node twice", input: head + "NODE_COORD_SECTION\n1 0 0\n1 3 4\n" + items, want: ttpio.ErrSyntax},
		{name: "too few nodes", input: head + "NODE_COORD_SECTION\n1 0 0\n" + items, want: ttpio.ErrSyntax},
		{name: "bad item row", input: head + nodes + "ITEMS SECTION\n1 x 1 2\n", want: ttpio.ErrSyntax},
		{name: "too few items", input: head + nodes + "ITEMS SECTION\n", want: ttpio.ErrSyntax},
		{name: "item city out of range", input: head + nodes + "ITEMS SECTION\n1 1 1 7\n", want: ttp.ErrInvalidInput},
		{name: "min speed above max", input: strings.Replace(head, "MIN SPEED: 0.1", "MIN SPEED: 2", 1) + nodes + items, want: ttp.ErrInvalidInput},
		{name: "non-finite coordinate", input: head + "NODE_COORD_SECTION\n1 0 0\n2 NaN 4\n" + items, want: matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ttpio.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_ErrorNamesLine(t *testing.T) {
	in := "DIMENSION: 1\nNUMBER OF ITEMS: 0\nCAPACITY OF KNAPSACK: 1\nMIN SPEED: 0.1\nMAX SPEED: 1\nRENTING RATIO: 1\nNODE_COORD_SECTION\n1 0\n"
	_, err := ttpio.Parse(strings.NewReader(in))
	require.ErrorIs(t, err, ttpio.ErrSyntax)
	require.Contains(t, err.Error(), "line 8")
}
