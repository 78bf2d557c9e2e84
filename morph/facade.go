// Package morph implements spec.md's pattern-decomposition dilation/erosion
// core (C1-C8): cyclic shift computation, Minkowski shift optimization, the
// in-place/out-of-place elementary pass kernel, the Minkowski and
// Union-Decomposition planners, the memory budget, and the Top Planner that
// ties them together behind Dilation and Erosion.
package morph

import (
	"github.com/ajroetker/gomorph/execctx"
	"github.com/ajroetker/gomorph/morph/contrib/arraypool"
	"github.com/ajroetker/gomorph/pattern"
)

// Dilation computes the grayscale dilation of src by p into dst: dst[x] =
// max over q in p of src[x+q] (cyclic indexing). src and dst must have the
// same length, and dst must not alias src: every branch, the naive single
// pass included, reads src after it has written parts of dst — callers that
// need true in-place semantics should pass a fresh dst and swap afterward.
func Dilation[T Numeric](ctx *execctx.Context, dims []int, src, dst Array[T], p *pattern.Pattern) error {
	return runTopPlanner(ctx, dims, src, dst, p, false, MaxReducer[T]())
}

// Erosion computes the grayscale erosion of src by p into dst: dst[x] = min
// over q in p of src[x-q] (cyclic indexing) — the symmetric counterpart of
// Dilation, per §4.1's duality note.
func Erosion[T Numeric](ctx *execctx.Context, dims []int, src, dst Array[T], p *pattern.Pattern) error {
	return runTopPlanner(ctx, dims, src, dst, p, true, MinReducer[T]())
}

// runTopPlanner validates inputs, picks a memory model, and dispatches,
// recovering any *InternalInvariantError panic raised by the planner below
// it into a returned error — the one recovery point spec.md's error
// handling section asks for, matching the teacher's "workers are trusted
// code; the facade is the untrusted boundary" posture (workerpool.go's
// worker loop does not recover either). Any other panic is not ours to
// handle and propagates.
func runTopPlanner[T Numeric](ctx *execctx.Context, dims []int, src, dst Array[T], p *pattern.Pattern, symmetric bool, reduce Reducer[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if invErr, ok := r.(*InternalInvariantError); ok {
				err = invErr
				return
			}
			panic(r)
		}
	}()

	if src.Len() != dst.Len() {
		sizeErr := &SizeMismatchError{SourceDims: dims, DestDims: []int{dst.Len()}}
		if shaped, ok := dst.(interface{ Dims() []int }); ok {
			sizeErr.DestDims = shaped.Dims()
		}
		return sizeErr
	}
	if int64(src.Len()) > 1<<62-1 {
		return &TooLargeArrayError{Length: int64(src.Len())}
	}
	if p == nil || p.PointCount() == 0 {
		invariant("Dilation/Erosion: empty structuring element")
	}

	l := src.Len()
	footprint := footprintBytes[T](l)
	model := ChooseMemoryModel(footprint, 3, footprintBytes[T](int(maxBoundEstimate(p))), ctx.Config().DefaultTempMemoryBytes)
	_ = model // both FastInRAM and ContextSupplied currently resolve to the same in-process arraypool; a disk-backed Array implementation would branch here.

	pool := arraypool.New[T](l, 3)
	return dispatchPattern(ctx, dims, src, dst, p, symmetric, reduce, pool)
}

// dispatchPattern is the Top Planner (C8): it picks among the naive
// single-pass branch, the Minkowski Planner (C4), and the
// Union-Decomposition Planner (C6), per §4.8.
//
//  1. Non-integer patterns, or patterns too small to be worth decomposing,
//     go straight to the naive branch: one shift list, one out-of-place
//     pass.
//  2. Otherwise, a Minkowski decomposition into two or more summands is
//     preferred — it is always a single chained pass sequence, cheaper than
//     a union decomposition's per-group work.
//  3. Failing that, a union decomposition into two or more rows is used.
//  4. If neither decomposition helps, the naive branch is the fallback of
//     last resort — always correct, for any pattern.
func dispatchPattern[T Numeric](ctx *execctx.Context, dims []int, src, dst Array[T], p *pattern.Pattern, symmetric bool, reduce Reducer[T], pool *arraypool.Pool[T]) error {
	if ctx.Cancelled() {
		return &CancelledError{Cause: ctx.Std().Err()}
	}

	cfg := ctx.Config()
	if !p.IsSurelyInteger() || p.PointCount() < cfg.MinPointsToDecompose {
		return naivePass(ctx, dims, src, dst, p, symmetric, reduce)
	}
	if summands := p.MinkowskiDecomposition(cfg.MinPointsToDecompose); len(summands) >= 2 {
		return dilateByMinkowski(ctx, dims, src, dst, summands, symmetric, reduce, pool)
	}
	if unions := p.AllUnionDecompositions(cfg.MinPointsToDecompose); len(unions) > 0 {
		return dilateByUnion(ctx, dims, src, dst, unions[0], symmetric, reduce, pool)
	}
	return naivePass(ctx, dims, src, dst, p, symmetric, reduce)
}

// naivePass applies every point of p as one shift list in a single
// out-of-place pass — branch 1 of §4.8, and the correctness baseline every
// other branch must agree with (§8's naive-vs-optimized equivalence
// property).
func naivePass[T Numeric](ctx *execctx.Context, dims []int, src, dst Array[T], p *pattern.Pattern, symmetric bool, reduce Reducer[T]) error {
	shifts, _, err := computeShifts(p.Points(), dims, symmetric)
	if err != nil {
		return err
	}
	return PassOutOfPlace(ctx, src, dst, shifts, reduce)
}

// footprintBytes estimates one array's byte footprint for the memory budget.
func footprintBytes[T Numeric](l int) int64 {
	var zero T
	return int64(l) * int64(sizeOf(zero))
}

func sizeOf[T Numeric](T) int {
	var v T
	switch any(v).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

// maxBoundEstimate returns the tail/boundary buffer size the elementary pass
// kernel needs in the worst case: the pattern's largest per-axis bound,
// rounded up, as a proxy for the maximum cyclic shift it can produce.
func maxBoundEstimate(p *pattern.Pattern) int64 {
	m := 0.0
	for axis := 0; axis < p.DimCount(); axis++ {
		if b := p.MaxBound(axis); b > m {
			m = b
		}
	}
	return int64(m) + 1
}
