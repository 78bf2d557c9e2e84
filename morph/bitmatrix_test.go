package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/gomorph/pattern"
)

func TestBitMatrixSetAtRoundTrip(t *testing.T) {
	b := NewBitMatrix([]int{10})
	for _, i := range []int{0, 1, 9, 3} {
		b.Set(i, 1)
	}
	for i := 0; i < 10; i++ {
		want := uint8(0)
		switch i {
		case 0, 1, 9, 3:
			want = 1
		}
		assert.Equal(t, want, b.At(i), "bit %d", i)
	}

	b.Set(1, 0)
	assert.Equal(t, uint8(0), b.At(1))
}

func TestRotateLeftBitsMatchesNaiveCyclicShift(t *testing.T) {
	l := 13
	bits := []uint8{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0}
	words := make([]uint64, (l+63)/64)
	for i, v := range bits {
		if v != 0 {
			words[i>>6] |= uint64(1) << uint(i&63)
		}
	}

	for _, s := range []int{0, 1, 5, 12, 13, 25} {
		rotated := rotateLeftBits(words, l, s)
		for i := 0; i < l; i++ {
			want := bits[((i+s)%l+l)%l]
			assert.Equal(t, want, bitAt(rotated, i), "s=%d i=%d", s, i)
		}
	}
}

// TestPassOutOfPlaceBitMatrixMatchesGenericArray checks that the BitMatrix
// fast path in PassOutOfPlace (bitmatrixPassOutOfPlace) agrees with the
// generic per-index loop run over an equivalent Matrix[uint8].
func TestPassOutOfPlaceBitMatrixMatchesGenericArray(t *testing.T) {
	l := 11
	bits := []uint8{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0}
	shifts := []int{2, 5, 9}

	src := NewBitMatrix([]int{l})
	refSrc := NewMatrix[uint8]([]int{l})
	for i, v := range bits {
		src.Set(i, v)
		refSrc.Set(i, v)
	}

	dst := NewBitMatrix([]int{l})
	require.NoError(t, PassOutOfPlace[uint8](nil, src, dst, shifts, MaxReducer[uint8]()))

	refDst := NewMatrix[uint8]([]int{l})
	require.NoError(t, PassOutOfPlace[uint8](nil, refSrc, refDst, shifts, MaxReducer[uint8]()))

	for i := 0; i < l; i++ {
		assert.Equal(t, refDst.At(i), dst.At(i), "index %d", i)
	}
}

func TestPassInPlaceBitMatrixMatchesOutOfPlace(t *testing.T) {
	l := 9
	bits := []uint8{1, 0, 0, 1, 1, 0, 1, 0, 1}
	shifts := []int{1, 4}

	src := NewBitMatrix([]int{l})
	for i, v := range bits {
		src.Set(i, v)
	}
	refDst := NewBitMatrix([]int{l})
	require.NoError(t, PassOutOfPlace[uint8](nil, src, refDst, shifts, MaxReducer[uint8]()))

	arr := NewBitMatrix([]int{l})
	for i, v := range bits {
		arr.Set(i, v)
	}
	require.NoError(t, PassInPlace[uint8](nil, arr, shifts, MaxReducer[uint8](), nil))

	for i := 0; i < l; i++ {
		assert.Equal(t, refDst.At(i), arr.At(i), "index %d", i)
	}
}

func TestDilationUsesBitMatrixFastPath(t *testing.T) {
	dims := []int{16}
	src := NewBitMatrix(dims)
	for _, i := range []int{0, 1, 8, 15} {
		src.Set(i, 1)
	}
	dst := NewBitMatrix(dims)

	p := pattern.Segment(1, 0, 3)
	require.NoError(t, Dilation[uint8](testCtx(100), dims, src, dst, p))

	refSrc := NewMatrix[uint8](dims)
	for _, i := range []int{0, 1, 8, 15} {
		refSrc.Set(i, 1)
	}
	refDst := NewMatrix[uint8](dims)
	require.NoError(t, Dilation[uint8](testCtx(100), dims, refSrc, refDst, p))

	for i := 0; i < 16; i++ {
		assert.Equal(t, refDst.At(i), dst.At(i), "index %d", i)
	}
}
