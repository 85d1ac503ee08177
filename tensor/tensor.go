// Copyright 2026 TypeTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/typetensor/typetensor/internal/tensor"
)

// Type aliases for the public API.

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Strides describe the element step per logical axis.
type Strides = tensor.Strides

// Tensor is a generic, type-safe view over a shared buffer.
type Tensor[T DType] = tensor.Tensor[T]

// RawTensor is the low-level view descriptor: shape, strides and offset
// over a reference-counted buffer. Most users should use Tensor[T].
type RawTensor = tensor.RawTensor

// Sentinel errors. Match with errors.Is.
var (
	ErrShapeMismatch  = tensor.ErrShapeMismatch
	ErrAxisOutOfRange = tensor.ErrAxisOutOfRange
)

// FromSlice creates a tensor over a fresh buffer from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with the zero value of T.
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// Arange creates a rank-1 tensor with values [start, end) stepping by 1.
func Arange[T DType](start, end int) (*Tensor[T], error) {
	return tensor.Arange[T](start, end)
}

// NewRaw creates a zero-initialized RawTensor with canonical row-major
// strides. For advanced use; most callers want FromSlice.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}
