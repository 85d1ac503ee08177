// Copyright 2026 TypeTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typetensor/typetensor/tensor"
)

func TestPublicAPIRoundTrip(t *testing.T) {
	x, err := tensor.FromSlice([]int64{1, 2, 3, 4, 5, 6}, tensor.Shape{6})
	require.NoError(t, err)

	r, err := x.Reshape(2, 3)
	require.NoError(t, err)
	assert.True(t, r.SharesStorageWith(x))
	assert.True(t, r.IsContiguous())

	tr, err := r.Transpose(0, 1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, tr.Shape())
	assert.Equal(t, tensor.Strides{1, 3}, tr.Strides())
	assert.False(t, tr.IsContiguous())
	assert.True(t, tr.SharesStorageWith(x))

	fl := tr.Flatten()
	assert.False(t, fl.SharesStorageWith(x))
	assert.Equal(t, []int64{1, 4, 2, 5, 3, 6}, fl.Elems())
}

func TestPublicAPIErrors(t *testing.T) {
	x, err := tensor.Zeros[float32](tensor.Shape{2, 3})
	require.NoError(t, err)

	_, err = x.Reshape(4, 4)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = x.Transpose(0, 5)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)
}

func TestPublicAPICreation(t *testing.T) {
	f, err := tensor.Full(tensor.Shape{2, 2}, float64(1.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1.5, 1.5, 1.5}, f.Elems())

	a, err := tensor.Arange[int32](0, 4)
	require.NoError(t, err)
	r, err := a.Reshape(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(3), r.At(1, 1))
}
