package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ttp/matrix"
	"github.com/stretchr/testify/require"
)

// TestOptionsDefaults verifies that nil options are skipped and the default
// keeps exact distances.
func TestOptionsDefaults(t *testing.T) {
	require.False(t, matrix.DefaultCeil)

	pts := []matrix.Point{{0, 0}, {1, 1}}
	m, err := matrix.NewEuclidean(pts, nil)
	require.NoError(t, err)
	d, _ := m.At(0, 1)
	require.InDelta(t, 1.4142135623730951, d, 1e-15)

	// applying WithCeil twice is idempotent
	m, err = matrix.NewEuclidean(pts, matrix.WithCeil(), matrix.WithCeil())
	require.NoError(t, err)
	d, _ = m.At(0, 1)
	require.Equal(t, 2.0, d)
}
