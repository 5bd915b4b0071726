// SPDX-License-Identifier: MIT

// Package genetic - coupled tour/plan crossover.
//
// Single- and two-point crossover splice two parent tours and, with the same
// cut points, their packing plans. Spliced tours may repeat cities and are
// passed through RepairTour; plans are bit-strings and are spliced as is.
//
// Cut points live in [1, dimension-1], so both parents always contribute
// at least one gene to a single-point child. With dimension == 1 no cut
// exists and the children are copies of the parents.
package genetic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ttp/ttp"
)

// SinglePoint draws one cut c uniformly from [1, dimension-1] and returns
//
//	tour_c1 = repair(a[:c] + b[c:]),  tour_c2 = repair(b[:c] + a[c:])
//	plan_c1 = pa[:c] + pb[c:],        plan_c2 = pb[:c] + pa[c:]
//
// A nil rng draws from the shared default stream (see SeedDefault).
//
// Errors: ErrInvalidInput when parents are not permutations of
// {1..dimension} or any parent has the wrong length.
func SinglePoint(rng *rand.Rand, a, b ttp.Tour, pa, pb ttp.PackingPlan, dimension int) (ttp.Tour, ttp.Tour, ttp.PackingPlan, ttp.PackingPlan, error) {
	if err := validateParents("SinglePoint", a, b, pa, pb, dimension); err != nil {
		return nil, nil, nil, nil, err
	}
	if dimension == 1 {
		return a.Clone(), b.Clone(), pa.Clone(), pb.Clone(), nil
	}
	c := drawCut(orDefault(rng), dimension)
	return singlePoint(c, a, b, pa, pb)
}

// SinglePointAt is SinglePoint with an explicit cut c ∈ [1, dimension-1].
func SinglePointAt(c int, a, b ttp.Tour, pa, pb ttp.PackingPlan, dimension int) (ttp.Tour, ttp.Tour, ttp.PackingPlan, ttp.PackingPlan, error) {
	if err := validateParents("SinglePointAt", a, b, pa, pb, dimension); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := validateCut("SinglePointAt", c, dimension); err != nil {
		return nil, nil, nil, nil, err
	}
	return singlePoint(c, a, b, pa, pb)
}

func singlePoint(c int, a, b ttp.Tour, pa, pb ttp.PackingPlan) (ttp.Tour, ttp.Tour, ttp.PackingPlan, ttp.PackingPlan, error) {
	n := len(a)
	c1, err := RepairTour(splice(a, b, c, n))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	c2, err := RepairTour(splice(b, a, c, n))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return c1, c2, splice(pa, pb, c, n), splice(pb, pa, c, n), nil
}

// TwoPoint draws two cuts independently and uniformly from [1, dimension-1]
// and returns
//
//	tour_c1 = repair(a[:lo] + b[lo:hi] + a[hi:]),  tour_c2 symmetric,
//	plan_c1 = pa[:lo] + pb[lo:hi] + pa[hi:],       plan_c2 symmetric,
//
// where lo, hi are the cuts in ascending order. Equal cuts give an empty
// middle segment, i.e. children equal to their first parent.
// A nil rng draws from the shared default stream (see SeedDefault).
func TwoPoint(rng *rand.Rand, a, b ttp.Tour, pa, pb ttp.PackingPlan, dimension int) (ttp.Tour, ttp.Tour, ttp.PackingPlan, ttp.PackingPlan, error) {
	if err := validateParents("TwoPoint", a, b, pa, pb, dimension); err != nil {
		return nil, nil, nil, nil, err
	}
	if dimension == 1 {
		return a.Clone(), b.Clone(), pa.Clone(), pb.Clone(), nil
	}
	r := orDefault(rng)
	x := drawCut(r, dimension)
	y := drawCut(r, dimension)
	return twoPoint(x, y, a, b, pa, pb)
}

// TwoPointAt is TwoPoint with explicit cuts, both in [1, dimension-1].
// The cuts are sorted before slicing, so (x, y) and (y, x) give the same
// children.
func TwoPointAt(x, y int, a, b ttp.Tour, pa, pb ttp.PackingPlan, dimension int) (ttp.Tour, ttp.Tour, ttp.PackingPlan, ttp.PackingPlan, error) {
	if err := validateParents("TwoPointAt", a, b, pa, pb, dimension); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := validateCut("TwoPointAt", x, dimension); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := validateCut("TwoPointAt", y, dimension); err != nil {
		return nil, nil, nil, nil, err
	}
	return twoPoint(x, y, a, b, pa, pb)
}

func twoPoint(x, y int, a, b ttp.Tour, pa, pb ttp.PackingPlan) (ttp.Tour, ttp.Tour, ttp.PackingPlan, ttp.PackingPlan, error) {
	if x > y {
		x, y = y, x
	}
	n := len(a)
	c1, err := RepairTour(splice3(a, b, x, y, n))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	c2, err := RepairTour(splice3(b, a, x, y, n))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return c1, c2, splice3(pa, pb, x, y, n), splice3(pb, pa, x, y, n), nil
}

// CrossSinglePoint applies SinglePoint to two chromosomes.
func CrossSinglePoint(rng *rand.Rand, x, y Chromosome) (Chromosome, Chromosome, error) {
	t1, t2, p1, p2, err := SinglePoint(rng, x.Tour, y.Tour, x.Plan, y.Plan, x.Dimension())
	if err != nil {
		return Chromosome{}, Chromosome{}, err
	}
	return Chromosome{Tour: t1, Plan: p1}, Chromosome{Tour: t2, Plan: p2}, nil
}

// CrossTwoPoint applies TwoPoint to two chromosomes.
func CrossTwoPoint(rng *rand.Rand, x, y Chromosome) (Chromosome, Chromosome, error) {
	t1, t2, p1, p2, err := TwoPoint(rng, x.Tour, y.Tour, x.Plan, y.Plan, x.Dimension())
	if err != nil {
		return Chromosome{}, Chromosome{}, err
	}
	return Chromosome{Tour: t1, Plan: p1}, Chromosome{Tour: t2, Plan: p2}, nil
}

// drawCut returns a uniform cut in [1, n-1]; requires n >= 2.
func drawCut(rng *rand.Rand, n int) int {
	return 1 + rng.Intn(n-1)
}

func validateCut(op string, c, n int) error {
	if c < 1 || c > n-1 {
		return fmt.Errorf("%s: cut %d outside [1,%d]: %w", op, c, n-1, ttp.ErrInvalidInput)
	}
	return nil
}

// splice returns x[:c] + y[c:] as a fresh slice of length n.
func splice[S ~[]E, E any](x, y S, c, n int) S {
	out := make(S, n)
	copy(out, x[:c])
	copy(out[c:], y[c:])
	return out
}

// splice3 returns x[:lo] + y[lo:hi] + x[hi:] as a fresh slice; lo <= hi.
func splice3[S ~[]E, E any](x, y S, lo, hi, n int) S {
	out := make(S, n)
	copy(out, x)
	copy(out[lo:hi], y[lo:hi])
	return out
}
