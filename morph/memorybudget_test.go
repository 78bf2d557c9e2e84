package morph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChooseMemoryModelFastWhenWithinBudget(t *testing.T) {
	assert.Equal(t, FastInRAM, ChooseMemoryModel(1000, 3, 100, 10_000))
}

func TestChooseMemoryModelContextSuppliedWhenOverBudget(t *testing.T) {
	assert.Equal(t, ContextSupplied, ChooseMemoryModel(1000, 3, 100, 2000))
}

func TestChooseMemoryModelOverflowGuard(t *testing.T) {
	assert.Equal(t, ContextSupplied, ChooseMemoryModel(math.MaxInt64/2, 3, 0, math.MaxInt64))
}

func TestChooseMemoryModelZeroWorkMatricesIsFree(t *testing.T) {
	assert.Equal(t, FastInRAM, ChooseMemoryModel(1000, 0, 0, 0))
}

func TestMemoryModelString(t *testing.T) {
	assert.Equal(t, "fast-in-ram", FastInRAM.String())
	assert.Equal(t, "context-supplied", ContextSupplied.String())
}
