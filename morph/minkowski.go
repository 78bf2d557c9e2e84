package morph

import (
	"github.com/samber/lo"

	"github.com/ajroetker/gomorph/execctx"
	"github.com/ajroetker/gomorph/morph/contrib/arraypool"
	"github.com/ajroetker/gomorph/pattern"
)

// dilateByMinkowski is the Minkowski Planner (C4): given the summands of one
// Minkowski decomposition (pattern.Pattern.MinkowskiDecomposition), it
// partitions them into summands small enough to turn directly into shift
// lists and summands that still warrant their own recursive planning, chains
// the small ones through C1/C2/C3 in a single pass sequence, then bounces
// the running result through one extra work buffer per complex summand.
func dilateByMinkowski[T Numeric](ctx *execctx.Context, dims []int, src, dst Array[T], summands []*pattern.Pattern, symmetric bool, reduce Reducer[T], pool *arraypool.Pool[T]) error {
	l := src.Len()
	threshold := ctx.Config().MinPointsToDecompose

	simple, complexSummands := lo.FilterReject(summands, func(p *pattern.Pattern, _ int) bool {
		return p.PointCount() <= threshold
	})

	shiftLists := make([][]int, 0, len(simple))
	for _, s := range simple {
		shifts, _, err := computeShifts(s.Points(), dims, symmetric)
		if err != nil {
			return err
		}
		shiftLists = append(shiftLists, shifts)
	}
	compacted := optimizeShifts(shiftLists, l)
	if len(compacted) == 0 {
		compacted = [][]int{{0}}
	}
	if err := runMinkowskiChain(ctx, src, dst, l, compacted, reduce, pool); err != nil {
		return err
	}

	// Each complex summand is resolved by recursing into the Top Planner
	// (C8), bouncing the running destination through one pool buffer: dst
	// holds dilate(src, simpleSummands); after this loop it holds
	// dilate(dst, complexSummand) for every remaining summand, which by
	// Minkowski associativity equals dilate(src, all summands).
	for _, cp := range complexSummands {
		guard := pool.Get()
		tmp := NewMatrixFromData[T](dims, guard.Buf())
		err := dispatchPattern(ctx, dims, dst, tmp, cp, symmetric, reduce, pool)
		if err == nil {
			copyArray[T](dst, tmp, l)
		}
		guard.Release()
		if err != nil {
			return err
		}
	}
	return nil
}

// runMinkowskiChain executes one optimizeShifts result (C2's compacted
// shift lists) as one out-of-place pass from the last (corrective) list
// followed by one in-place pass per preceding list, per §4.4 step 2.
func runMinkowskiChain[T Numeric](ctx *execctx.Context, src, dst Array[T], l int, compacted [][]int, reduce Reducer[T], pool *arraypool.Pool[T]) error {
	last := compacted[len(compacted)-1]
	if err := PassOutOfPlace(ctx, src, dst, last, reduce); err != nil {
		return err
	}
	for _, shifts := range compacted[:len(compacted)-1] {
		m := shifts[len(shifts)-1]
		guard := pool.Get()
		tail := guard.Buf()[:m]
		err := PassInPlace(ctx, dst, shifts, reduce, tail)
		guard.Release()
		if err != nil {
			return err
		}
	}
	return nil
}

func copyArray[T Numeric](dst, src Array[T], l int) {
	for i := 0; i < l; i++ {
		dst.Set(i, src.At(i))
	}
}

func reduceInto[T Numeric](acc, other Array[T], l int, reduce Reducer[T]) {
	for i := 0; i < l; i++ {
		acc.Set(i, reduce(acc.At(i), other.At(i)))
	}
}
