package morph

// Numeric is the constraint for element types the planner can dilate/erode:
// the unsigned/signed integer and floating-point widths spec.md §3 lists,
// generalized the way the teacher's hwy.Lanes constraint generalizes SIMD
// lane types — one constraint, specialized per call site by the Go compiler
// instead of twelve hand-duplicated code paths.
type Numeric interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~float32 | ~float64
}

// maxOf returns the larger of a, b for any Numeric type; NaN-free integer
// and float semantics (a bit matrix never uses this path, see BitMatrix).
func maxOf[T Numeric](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// minOf returns the smaller of a, b for any Numeric type.
func minOf[T Numeric](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Reducer is "max" for dilation or "min" for erosion, applied pairwise by
// the elementary pass kernel (C3) while folding shifted copies of the
// source together.
type Reducer[T Numeric] func(a, b T) T

// MaxReducer implements dilation's elementwise reduction.
func MaxReducer[T Numeric]() Reducer[T] { return maxOf[T] }

// MinReducer implements erosion's elementwise reduction.
func MinReducer[T Numeric]() Reducer[T] { return minOf[T] }
