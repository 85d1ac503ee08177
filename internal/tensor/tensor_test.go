package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, Strides{3, 1}, x.Strides())
	assert.Equal(t, Int64, x.DType())
	assert.Equal(t, int64(6), x.At(1, 2))

	_, err = FromSlice([]int64{1, 2, 3}, Shape{2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestZerosFullArange(t *testing.T) {
	z, err := Zeros[float32](Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0}, z.Elems())

	f, err := Full(Shape{3}, int32(7))
	require.NoError(t, err)
	assert.Equal(t, []int32{7, 7, 7}, f.Elems())

	a, err := Arange[int64](2, 6)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 5}, a.Elems())
}

func TestTensorAtSetStrided(t *testing.T) {
	x, err := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	tr, err := x.Transpose(0, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(4), tr.At(0, 1))
	assert.Equal(t, int64(3), tr.At(2, 0))

	tr.Set(42, 1, 0)
	assert.Equal(t, int64(42), x.At(0, 1), "writes through a view land in the shared buffer")
}

func TestTensorElemsRespectsStrides(t *testing.T) {
	x, err := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	tr, err := x.Transpose(0, 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 4, 2, 5, 3, 6}, tr.Elems())
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, x.Elems())
}

func TestTensorItem(t *testing.T) {
	x, err := FromSlice([]int64{5}, Shape{1})
	require.NoError(t, err)

	s, err := x.Squeeze()
	require.NoError(t, err)
	assert.Equal(t, Shape{}, s.Shape())
	assert.Equal(t, int64(5), s.Item())
}

func TestTensorChain(t *testing.T) {
	x, err := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{6})
	require.NoError(t, err)

	r, err := x.Reshape(2, 3)
	require.NoError(t, err)
	tr, err := r.Transpose(0, 1)
	require.NoError(t, err)
	fl := tr.Flatten()

	assert.True(t, tr.SharesStorageWith(x))
	assert.False(t, fl.SharesStorageWith(x))
	assert.Equal(t, []int64{1, 4, 2, 5, 3, 6}, fl.Elems())

	c := tr.Contiguous()
	assert.True(t, c.IsContiguous())
	assert.Equal(t, fl.Elems(), c.Flatten().Elems())
}

func TestTensorString(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, "Tensor[float32][2 3] strides=[3 1]", x.String())
}
