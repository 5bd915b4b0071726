// SPDX-License-Identifier: MIT

package genetic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/ttp/ttp"
)

// Biased performs elite-weighted uniform crossover on real-valued
// (random-key) chromosomes: for every position a uniform u in [0,1) is drawn
// and the elite gene is inherited when u <= bias, otherwise the non-elite gene.
// Genes are copied, never blended, and no repair is applied.
//
// A nil rng draws from the shared default stream (see SeedDefault).
//
// Errors: ErrInvalidInput when the parents differ in length or bias is not a
// finite value in [0, 1]. The bias check is stricter than plain "u <= bias"
// arithmetic requires: a bias above 1 or below 0 would silently degenerate
// into copying one parent, so it is reported instead.
//
// Complexity: O(n).
func Biased(rng *rand.Rand, elite, nonElite []float64, bias float64) ([]float64, error) {
	if len(elite) != len(nonElite) {
		return nil, fmt.Errorf("Biased: parent lengths %d and %d differ: %w", len(elite), len(nonElite), ttp.ErrInvalidInput)
	}
	if math.IsNaN(bias) || bias < 0 || bias > 1 {
		return nil, fmt.Errorf("Biased: bias %g outside [0,1]: %w", bias, ttp.ErrInvalidInput)
	}

	r := orDefault(rng)
	out := make([]float64, len(elite))
	for i := range elite {
		if r.Float64() <= bias {
			out[i] = elite[i]
		} else {
			out[i] = nonElite[i]
		}
	}
	return out, nil
}
