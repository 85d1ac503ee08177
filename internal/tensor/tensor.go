package tensor

import "fmt"

// Tensor is a generic, type-safe view over a RawTensor.
//
// Type Parameters:
//   - T: Element type (must satisfy the DType constraint)
//
// Example:
//
//	t, _ := tensor.FromSlice([]int64{1, 2, 3, 4, 5, 6}, tensor.Shape{6})
//	r, _ := t.Reshape(2, 3)
type Tensor[T DType] struct {
	raw *RawTensor
}

// New creates a Tensor from a RawTensor.
func New[T DType](raw *RawTensor) *Tensor[T] {
	return &Tensor[T]{raw: raw}
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.raw.Shape()
}

// Strides returns the tensor's element strides.
func (t *Tensor[T]) Strides() Strides {
	return t.raw.Strides()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor descriptor.
func (t *Tensor[T]) Raw() *RawTensor {
	return t.raw
}

// IsContiguous reports whether the view matches canonical row-major
// layout for its shape.
func (t *Tensor[T]) IsContiguous() bool {
	return t.raw.IsContiguous()
}

// SharesStorageWith reports whether two tensors alias the same buffer
// with overlapping address ranges.
func (t *Tensor[T]) SharesStorageWith(other *Tensor[T]) bool {
	return t.raw.SharesStorageWith(other.raw)
}

// Reshape returns a tensor with the requested shape and the same
// row-major element sequence. Shares storage when the strides permit,
// copies otherwise. One dimension may be -1 to infer its size.
func (t *Tensor[T]) Reshape(dims ...int) (*Tensor[T], error) {
	raw, err := Reshape(t.raw, Shape(dims))
	if err != nil {
		return nil, err
	}
	return New[T](raw), nil
}

// Transpose returns a view with two axes swapped. Never copies.
func (t *Tensor[T]) Transpose(dim0, dim1 int) (*Tensor[T], error) {
	raw, err := Transpose(t.raw, dim0, dim1)
	if err != nil {
		return nil, err
	}
	return New[T](raw), nil
}

// Permute returns a view with axes reordered by the given permutation.
func (t *Tensor[T]) Permute(axes ...int) (*Tensor[T], error) {
	raw, err := Permute(t.raw, axes...)
	if err != nil {
		return nil, err
	}
	return New[T](raw), nil
}

// Flatten returns a rank-1 tensor of all elements in row-major order.
// Identical to Reshape(NumElements()), including its aliasing behavior.
func (t *Tensor[T]) Flatten() *Tensor[T] {
	return New[T](Flatten(t.raw))
}

// Contiguous returns a tensor guaranteed to be row-major contiguous.
// Already-contiguous tensors come back aliasing the same buffer.
func (t *Tensor[T]) Contiguous() *Tensor[T] {
	return New[T](Contiguous(t.raw))
}

// Squeeze removes the named size-1 axes (all of them when none given).
func (t *Tensor[T]) Squeeze(axes ...int) (*Tensor[T], error) {
	raw, err := Squeeze(t.raw, axes...)
	if err != nil {
		return nil, err
	}
	return New[T](raw), nil
}

// Unsqueeze inserts a size-1 axis before the given position.
func (t *Tensor[T]) Unsqueeze(axis int) (*Tensor[T], error) {
	raw, err := Unsqueeze(t.raw, axis)
	if err != nil {
		return nil, err
	}
	return New[T](raw), nil
}

// Expand broadcasts size-1 axes to the given sizes with zero strides.
func (t *Tensor[T]) Expand(sizes ...int) (*Tensor[T], error) {
	raw, err := Expand(t.raw, sizes...)
	if err != nil {
		return nil, err
	}
	return New[T](raw), nil
}

// Narrow slices the tensor to length elements along dim from start.
func (t *Tensor[T]) Narrow(dim, start, length int) (*Tensor[T], error) {
	raw, err := Narrow(t.raw, dim, start, length)
	if err != nil {
		return nil, err
	}
	return New[T](raw), nil
}

// Data returns a typed slice over the buffer from the view's offset.
// The slice directly accesses the underlying memory (zero-copy); for
// non-contiguous views the logical order differs from the slice order.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	case int32:
		return any(t.raw.AsInt32()).([]T)
	case int64:
		return any(t.raw.AsInt64()).([]T)
	case uint8:
		return any(t.raw.AsUint8()).([]T)
	case bool:
		return any(t.raw.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}

// Elems returns the view's elements in row-major logical order. Unlike
// Data, this respects strides and offset; it copies for strided views.
func (t *Tensor[T]) Elems() []T {
	if t.IsContiguous() {
		return t.Data()[:t.NumElements()]
	}
	out := make([]T, t.NumElements())
	gatherRowMajor(out, t.Data(), t.Shape(), t.Strides())
	return out
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	return t.Data()[t.raw.ElemOffset(indices...)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.Data()[t.raw.ElemOffset(indices...)] = value
}

// Item returns the scalar value of a 0-D or single-element tensor.
// Panics otherwise.
func (t *Tensor[T]) Item() T {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.Shape()))
	}
	return t.Data()[0]
}

// Clone returns a new descriptor aliasing the same buffer.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return New[T](t.raw.Clone())
}

// Release drops this view's reference to the shared buffer.
func (t *Tensor[T]) Release() {
	t.raw.Release()
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v strides=%v", t.DType(), t.Shape(), t.Strides())
}
