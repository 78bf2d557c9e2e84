package morph

import (
	"context"

	"github.com/ajroetker/gomorph/execctx"
	"github.com/ajroetker/gomorph/morph/contrib/workerpool"
)

// PassOutOfPlace is the Elementary Pass Kernel (C3) in its out-of-place
// mode: dst[i] = reduce(src[(i+s_j) mod L] for s_j in shifts), src and dst
// distinct. shifts must already be in [0, L) — the Shift-Index Computer
// (C1) and Minkowski Shift Optimizer (C2) are responsible for that — any
// out-of-range shift panics with an InternalInvariantError (errors.go's
// invariant), recovered only at the top-level Dilation/Erosion facade.
//
// If S = {0}, this degenerates to a straight copy.
//
// When src and dst are both *BitMatrix (so T is uint8), this dispatches to
// bitmatrixPassOutOfPlace instead of the generic per-index loop below.
func PassOutOfPlace[T Numeric](ctx *execctx.Context, src, dst Array[T], shifts []int, reduce Reducer[T]) error {
	l := src.Len()
	if dst.Len() != l {
		invariant("PassOutOfPlace: src and dst lengths differ")
	}
	if l == 0 {
		return nil
	}
	validateShifts(shifts, l)

	if bsrc, ok := any(src).(*BitMatrix); ok {
		if bdst, ok := any(dst).(*BitMatrix); ok {
			if bReduce, ok := any(reduce).(Reducer[uint8]); ok {
				bitmatrixPassOutOfPlace(bsrc, bdst, shifts, bReduce)
				return nil
			}
		}
	}

	body := func(start, end int) {
		for i := start; i < end; i++ {
			acc := src.At(cyclicAdd(i, shifts[0], l))
			for _, s := range shifts[1:] {
				acc = reduce(acc, src.At(cyclicAdd(i, s, l)))
			}
			dst.Set(i, acc)
		}
	}

	return runRanges(ctx, l, 1, body)
}

// PassInPlace is the Elementary Pass Kernel (C3) in its in-place mode:
// arr is both source and destination. tailBuf must have length >= max(S);
// the caller (the Minkowski/Union planners) owns tailBuf's lifetime via the
// array pool.
//
// When arr is a *BitMatrix (so T is uint8), this dispatches to
// bitmatrixPassInPlace instead, which needs neither tailBuf nor the
// right-edge-gap discipline below.
//
// Correctness despite overwriting the source during the pass: tailBuf first
// saves the pre-pass values of [0, M). While i sweeps [0, L-M) left to right
// within its own parallel range [start,end), every read at idx = i+s_j stays
// below L and falls into one of three zones:
//   - idx < end: still holds its pre-pass value, because idx >= i (shifts
//     are non-negative) and this range hasn't processed an index >= i yet.
//   - idx >= L-M: no range writes there, so it still holds its pre-pass
//     value.
//   - end <= idx < L-M: idx falls within M elements of this range's end,
//     i.e. the start of the next range, which may already be writing
//     concurrently; its pre-pass value was snapshotted into a per-boundary
//     buffer before any range started writing (the "right-edge gap").
//
// After all ranges finish, the last M outputs [L-M, L) are computed
// sequentially left to right: reads below L hit not-yet-written indices,
// and reads that wrap past L take the pre-pass values saved in tailBuf.
func PassInPlace[T Numeric](ctx *execctx.Context, arr Array[T], shifts []int, reduce Reducer[T], tailBuf []T) error {
	l := arr.Len()
	if l == 0 {
		return nil
	}
	validateShifts(shifts, l)

	m := 0
	if len(shifts) > 0 {
		m = shifts[len(shifts)-1] // shifts is sorted ascending, per C2's contract
	}
	if m == 0 {
		return nil // S = {0}: in-place no-op
	}

	if barr, ok := any(arr).(*BitMatrix); ok {
		if bReduce, ok := any(reduce).(Reducer[uint8]); ok {
			bitmatrixPassInPlace(barr, shifts, bReduce)
			return nil
		}
	}

	if len(tailBuf) < m {
		invariant("PassInPlace: tail buffer shorter than max shift")
	}

	for i := 0; i < m; i++ {
		tailBuf[i] = arr.At(i)
	}

	n := l - m
	ranges := buildRanges(n, recommendedRanges(ctx, n), m)

	// Snapshot, for every internal boundary, the M pre-pass elements that
	// start the following range — read before any range begins writing.
	boundaries := make([][]T, len(ranges))
	for k := 0; k < len(ranges)-1; k++ {
		end := ranges[k].End
		buf := make([]T, m)
		for j := 0; j < m; j++ {
			buf[j] = arr.At(end + j)
		}
		boundaries[k] = buf
	}

	readAt := func(rangeIdx, end, idx int) T {
		switch {
		case idx >= l:
			return tailBuf[idx-l]
		case idx < end || idx >= n:
			return arr.At(idx)
		default:
			return boundaries[rangeIdx][idx-end]
		}
	}

	body := func(rangeIdx, start, end int) {
		for i := start; i < end; i++ {
			acc := readAt(rangeIdx, end, i+shifts[0])
			for _, s := range shifts[1:] {
				acc = reduce(acc, readAt(rangeIdx, end, i+s))
			}
			arr.Set(i, acc)
		}
	}

	if err := dispatchIndexedRanges(ctx, ranges, body); err != nil {
		return err
	}
	// The last M outputs run sequentially once every range is done; their
	// reads past L wrap around into tailBuf.
	body(-1, n, l)
	return nil
}

// cyclicAdd returns (i+s) mod l for 0 <= i,s < l.
func cyclicAdd(i, s, l int) int {
	r := i + s
	if r >= l {
		r -= l
	}
	return r
}

func validateShifts(shifts []int, l int) {
	if len(shifts) == 0 {
		invariant("pass: empty shift list")
	}
	for _, s := range shifts {
		if s < 0 || s >= l {
			invariant("pass: shift out of range [0, L)")
		}
	}
}

// recommendedRanges asks the Context how many parallel ranges a pass of
// length n should use, falling back to a single sequential range when ctx
// or its pool is unavailable (e.g. a bare call from a unit test).
func recommendedRanges(ctx *execctx.Context, n int) int {
	if ctx == nil {
		return 1
	}
	r := ctx.RecommendedRanges(n)
	if r < 1 {
		return 1
	}
	return r
}

// buildRanges partitions [0, n) into at most `desired` contiguous ranges,
// every one but the last at least minLen long (so the in-place kernel's
// right-edge gap of minLen never has to reach two ranges ahead; reads past
// the last range land at or beyond n).
func buildRanges(n, desired, minLen int) []workerpool.Range {
	if n <= 0 {
		return nil
	}
	if minLen < 1 {
		minLen = 1
	}
	maxRanges := n / minLen
	if maxRanges < 1 {
		maxRanges = 1
	}
	count := desired
	if count > maxRanges {
		count = maxRanges
	}
	if count < 1 {
		count = 1
	}

	chunk := (n + count - 1) / count
	ranges := make([]workerpool.Range, 0, count)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		ranges = append(ranges, workerpool.Range{Start: start, End: end})
	}
	return ranges
}

// runRanges dispatches body(start, end) over a fresh partition of [0, n)
// recommended by ctx, used by the out-of-place path where ranges carry no
// index-dependent boundary state.
func runRanges(ctx *execctx.Context, n int, minLen int, body func(start, end int)) error {
	ranges := buildRanges(n, recommendedRanges(ctx, n), minLen)
	return dispatchIndexedRanges(ctx, ranges, func(_, start, end int) {
		body(start, end)
	})
}

// dispatchIndexedRanges runs body once per range via the Context's pool,
// passing each range's position in the ranges slice so in-place passes can
// look up their own boundary buffer.
func dispatchIndexedRanges(ctx *execctx.Context, ranges []workerpool.Range, body func(rangeIdx, start, end int)) error {
	if len(ranges) == 0 {
		return nil
	}
	if ctx == nil || ctx.Pool() == nil {
		for idx, r := range ranges {
			body(idx, r.Start, r.End)
		}
		return nil
	}

	poolRanges := make([]workerpool.Range, len(ranges))
	copy(poolRanges, ranges)

	// workerpool.Range doesn't carry an index, so recover each range's
	// position by lookup; ranges counts are bounded by config.MaxRangesPerPass
	// but in practice track the worker count, so a linear scan is cheap.
	err := ctx.Pool().ParallelForRanges(ctx.Std(), poolRanges, func(stdCtx context.Context, r workerpool.Range) error {
		if stdCtx.Err() != nil {
			return &CancelledError{Cause: stdCtx.Err()}
		}
		idx := indexOfRange(ranges, r)
		body(idx, r.Start, r.End)
		return nil
	})
	return err
}

func indexOfRange(ranges []workerpool.Range, r workerpool.Range) int {
	for i, candidate := range ranges {
		if candidate == r {
			return i
		}
	}
	return 0
}
