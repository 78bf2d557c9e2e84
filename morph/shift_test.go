package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/gomorph/pattern"
)

func TestComputeShiftsCyclicWrap(t *testing.T) {
	dims := []int{4, 5} // L=20, strides [5,1]
	shifts, increments, err := computeShifts([]pattern.Point{{0, 0}, {1, 0}, {0, 1}, {4, 5}}, dims, false)
	require.NoError(t, err)
	// (4 mod 4)*5 + (5 mod 5)*1 = 0
	assert.Equal(t, []int{0, 5, 1, 0}, shifts)
	assert.Equal(t, []float64{0, 0, 0, 0}, increments)
}

func TestComputeShiftsSymmetricNegatesAndReflects(t *testing.T) {
	dims := []int{10}
	shifts, _, err := computeShifts([]pattern.Point{{3}}, dims, true)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, shifts) // L-3
}

func TestComputeShiftsRationalLastCoordinate(t *testing.T) {
	dims := []int{10}
	_, increments, err := computeShifts([]pattern.Point{{3, 1.5}}, dims, false)
	require.NoError(t, err)
	assert.Equal(t, 1.5, increments[0])
}

func TestComputeShiftsDimensionMismatch(t *testing.T) {
	dims := []int{10}
	_, _, err := computeShifts([]pattern.Point{{1, 2, 3}}, dims, false)
	var dimErr *DimensionMismatchError
	assert.ErrorAs(t, err, &dimErr)
}
