package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeShiftsCompactsAndExtractsCorrection(t *testing.T) {
	// l=100; one multi-point summand at {10,12,14} should compact to an
	// origin-zeroed {0,2,4} plus a correction of 10.
	compacted := optimizeShifts([][]int{{10, 12, 14}}, 100)
	require.Len(t, compacted, 2)
	assert.Equal(t, []int{0, 2, 4}, compacted[0])
	assert.Equal(t, []int{10}, compacted[1])
}

func TestOptimizeShiftsSingletonsFoldIntoCorrection(t *testing.T) {
	compacted := optimizeShifts([][]int{{5}, {7}}, 100)
	require.Len(t, compacted, 1)
	assert.Equal(t, []int{12}, compacted[0])
}

func TestOptimizeShiftsNoCorrectionWhenAlreadyZeroed(t *testing.T) {
	compacted := optimizeShifts([][]int{{0, 3, 6}}, 100)
	require.Len(t, compacted, 1)
	assert.Equal(t, []int{0, 3, 6}, compacted[0])
}

func TestOptimizeShiftsEmptyListIgnored(t *testing.T) {
	compacted := optimizeShifts([][]int{nil, {0, 1}}, 10)
	require.Len(t, compacted, 1)
	assert.Equal(t, []int{0, 1}, compacted[0])
}

func TestModWrapsNegative(t *testing.T) {
	assert.Equal(t, 3, mod(-7, 10))
	assert.Equal(t, 0, mod(10, 10))
}
