// SPDX-License-Identifier: MIT

package population

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the net fitness of a scored population.
type Stats struct {
	Size       int
	Best       float64 // highest Net
	Worst      float64 // lowest Net
	Mean       float64
	StdDev     float64 // sample standard deviation; 0 for a single member
	BestIndex  int     // Scored.Index of the best member, -1 when empty
	WorstIndex int     // Scored.Index of the worst member, -1 when empty
}

// Summarize computes Stats over the Net values of scored.
// Ties resolve to the earliest entry.
func Summarize(scored []Scored) Stats {
	if len(scored) == 0 {
		return Stats{BestIndex: -1, WorstIndex: -1}
	}

	net := make([]float64, len(scored))
	for i, s := range scored {
		net[i] = s.Net
	}
	hi, lo := floats.MaxIdx(net), floats.MinIdx(net)

	st := Stats{
		Size:       len(net),
		Best:       net[hi],
		Worst:      net[lo],
		BestIndex:  scored[hi].Index,
		WorstIndex: scored[lo].Index,
	}
	if len(net) == 1 {
		st.Mean = net[0]
		return st
	}
	st.Mean, st.StdDev = stat.MeanStdDev(net, nil)

	return st
}

// Best returns the highest-Net entry of scored and false when it is empty.
func Best(scored []Scored) (Scored, bool) {
	if len(scored) == 0 {
		return Scored{}, false
	}
	best := 0
	for i := 1; i < len(scored); i++ {
		if scored[i].Net > scored[best].Net {
			best = i
		}
	}
	return scored[best], true
}
