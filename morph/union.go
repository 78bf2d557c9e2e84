package morph

import (
	"github.com/ajroetker/gomorph/execctx"
	"github.com/ajroetker/gomorph/morph/contrib/arraypool"
	"github.com/ajroetker/gomorph/morph/contrib/decompose"
	"github.com/ajroetker/gomorph/pattern"
)

// dilateByUnion is the Union-Decomposition Planner (C6): given one union
// decomposition's rows, it compacts them (C5) into MinkowskiPair groups and
// walks them in order, maintaining a running "temp-for-morph" result (per
// §4.6) across same-axis neighbors:
//
//  1. If IncrementFromPrevious is set, this pair's segment differs from the
//     previous one processed by a small amount: extend the running
//     temp-for-morph in place via the Minkowski Planner (C4) instead of
//     recomputing src ⊕ pair.Main from scratch, then realign it from the
//     previous segment's anchor to this one's (segments are anchored at
//     their own group's first member, which generally differs from the
//     previous group's anchor even along the same axis).
//  2. Otherwise (first segment of a new group, or an isolated non-segment
//     pattern) temp-for-morph is computed fresh via the Top Planner (C8).
//
// Each pair's contribution (temp-for-morph folded across its own
// translations, pair.Shifts) is then combined into dst with the same
// reducer the caller passed in — dilation's union-of-patterns and erosion's
// union-of-patterns both reduce to "fold reduce over every constituent
// point", whether that fold is max or min, so no dilation/erosion-specific
// branching is needed here.
func dilateByUnion[T Numeric](ctx *execctx.Context, dims []int, src, dst Array[T], rows []*pattern.Pattern, symmetric bool, reduce Reducer[T], pool *arraypool.Pool[T]) error {
	l := src.Len()
	dim := len(dims)
	pairs := decompose.Compact(dim, rows)
	if len(pairs) == 0 {
		invariant("union decomposition produced no groups")
	}

	baseGuard := pool.Get()
	scratchGuard := pool.Get()
	accGuard := pool.Get()
	defer baseGuard.Release()
	defer scratchGuard.Release()
	defer accGuard.Release()

	baseArr := NewMatrixFromData[T](dims, baseGuard.Buf())
	scratchArr := NewMatrixFromData[T](dims, scratchGuard.Buf())
	accArr := NewMatrixFromData[T](dims, accGuard.Buf())

	var prevOrigin pattern.Point

	for idx, pair := range pairs {
		if len(pair.IncrementFromPrevious) > 0 {
			if idx == 0 {
				invariant("union decomposition: increment-from-previous on first pair")
			}
			if err := dilateByMinkowski(ctx, dims, baseArr, scratchArr, pair.IncrementFromPrevious, symmetric, reduce, pool); err != nil {
				return err
			}
			baseArr, scratchArr = scratchArr, baseArr

			if _, _, origin, ok := pair.Main.AsSegment(); ok {
				if align := pointDelta(prevOrigin, origin); !isZeroPoint(align) {
					shifts, _, err := computeShifts([]pattern.Point{align}, dims, symmetric)
					if err != nil {
						return err
					}
					if err := PassOutOfPlace(ctx, baseArr, scratchArr, shifts, reduce); err != nil {
						return err
					}
					baseArr, scratchArr = scratchArr, baseArr
				}
			}
		} else if err := dispatchPattern(ctx, dims, src, baseArr, pair.Main, symmetric, reduce, pool); err != nil {
			return err
		}

		if _, _, origin, ok := pair.Main.AsSegment(); ok {
			prevOrigin = origin
		}

		result := Array[T](baseArr)
		if !(len(pair.Shifts) == 1 && isZeroPoint(pair.Shifts[0])) {
			shifts, _, err := computeShifts(pair.Shifts, dims, symmetric)
			if err != nil {
				return err
			}
			if err := PassOutOfPlace(ctx, baseArr, scratchArr, shifts, reduce); err != nil {
				return err
			}
			result = scratchArr
		}

		if idx == 0 {
			copyArray[T](accArr, result, l)
		} else {
			reduceInto[T](accArr, result, l, reduce)
		}
	}
	copyArray[T](dst, accArr, l)
	return nil
}

func isZeroPoint(p pattern.Point) bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// pointDelta returns b's offset from a, coordinate-wise — the translation
// needed to realign a temp-for-morph result extended at a's anchor to b's.
func pointDelta(a, b pattern.Point) pattern.Point {
	out := make(pattern.Point, len(a))
	for i := range a {
		out[i] = b[i] - a[i]
	}
	return out
}
