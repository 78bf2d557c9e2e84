package morph

import "fmt"

// DimensionMismatchError is returned when a pattern's dimension count
// matches neither the source matrix's dimension count nor that count plus
// one (see §4.1's N / N+1 convention for rational last-coordinate patterns).
type DimensionMismatchError struct {
	PatternDims int
	MatrixDims  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("morph: pattern has %d dimensions, expected %d or %d", e.PatternDims, e.MatrixDims, e.MatrixDims+1)
}

// SizeMismatchError is returned when a caller-supplied destination matrix's
// shape does not match the source's. Array carries no shape, so Dilation and
// Erosion detect this by comparing lengths.
type SizeMismatchError struct {
	SourceDims, DestDims []int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("morph: destination shape %v does not match source shape %v", e.DestDims, e.SourceDims)
}

// TooLargeArrayError is returned when a matrix's total length L would not
// leave the cyclic-shift arithmetic a headroom bit (L must fit in 2^62-1).
type TooLargeArrayError struct {
	Length int64
}

func (e *TooLargeArrayError) Error() string {
	return fmt.Sprintf("morph: array length %d exceeds the maximum of 2^62-1", e.Length)
}

// InternalInvariantError indicates a bug in the planner: a shift fell
// outside [0, L), a saved tail buffer was too small, or some other
// consistency condition the planner itself is responsible for maintaining
// did not hold. It is never retried or recovered by the core; the top-level
// facade surfaces it unchanged.
type InternalInvariantError struct {
	Reason string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("morph: internal invariant violated: %s", e.Reason)
}

// invariant panics with an *InternalInvariantError. Every internal
// consistency condition the planner itself is responsible for maintaining
// (shifts in range, buffers sized correctly, a decomposition producing at
// least one group) is checked this way rather than by a returned error: it
// is never an expected outcome of valid caller input, so there is nothing
// for a caller to usefully handle partway through a chained pass sequence.
// Dilation and Erosion recover exactly this type at the top-level facade
// and turn it into a returned error; any other panic propagates.
func invariant(reason string) {
	panic(&InternalInvariantError{Reason: reason})
}

// CancelledError wraps the context's cancellation signal, observed between
// passes. Partial destination contents are undefined after a CancelledError.
type CancelledError struct {
	Cause error
}

func (e *CancelledError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("morph: cancelled: %v", e.Cause)
	}
	return "morph: cancelled"
}

func (e *CancelledError) Unwrap() error { return e.Cause }
