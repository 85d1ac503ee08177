package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is the low-level view descriptor: shape, per-dimension strides
// (in elements) and a base offset over a reference-counted buffer. Many
// RawTensors may alias one buffer; a RawTensor never owns elements
// directly. Descriptors are immutable once created — every operation
// returns a new one, even when it aliases the same buffer.
type RawTensor struct {
	buffer *tensorBuffer // Shared reference-counted buffer
	shape  Shape         // Tensor dimensions
	stride Strides       // Element strides per dimension
	offset int           // Element offset of index zero into the buffer
	dtype  DataType      // Runtime type information
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated zero-initialized with canonical row-major strides.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawTensor{
		buffer: newTensorBuffer(byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		offset: 0,
	}, nil
}

// view creates a new descriptor over the same buffer. The buffer's
// reference count is incremented; the caller owns the result.
func (r *RawTensor) view(shape Shape, stride Strides, offset int) *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer: r.buffer,
		shape:  shape,
		stride: stride,
		offset: offset,
		dtype:  r.dtype,
	}
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's element strides.
func (r *RawTensor) Strides() Strides {
	return r.stride
}

// Offset returns the element offset of the view into its buffer.
func (r *RawTensor) Offset() int {
	return r.offset
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements in the view.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// IsContiguous reports whether the view's strides match the canonical
// row-major layout for its shape.
func (r *RawTensor) IsContiguous() bool {
	return isContiguous(r.shape, r.stride)
}

// SharesStorageWith reports whether two views alias the same buffer and
// their reachable address ranges overlap.
func (r *RawTensor) SharesStorageWith(other *RawTensor) bool {
	if other == nil || r.buffer != other.buffer {
		return false
	}
	aLo, aHi := addressBounds(r.offset, r.shape, r.stride)
	bLo, bHi := addressBounds(other.offset, other.shape, other.stride)
	return aLo <= bHi && bLo <= aHi
}

// ElemOffset returns the linear element address (relative to the view's
// offset) of the given multi-index. Panics on rank or bounds violations;
// mis-indexing is a programmer error, not an operational one.
func (r *RawTensor) ElemOffset(indices ...int) int {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		off += idx * r.stride[i]
	}
	return off
}

// Data returns the raw byte slice starting at the view's offset.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.buffer.data[r.offset*r.dtype.Size():]
}

// availElems returns how many elements are addressable from the view's
// offset to the end of the buffer. Strided views can legally address
// beyond shape.NumElements(), so typed accessors expose the whole tail.
func (r *RawTensor) availElems() int {
	return (len(r.buffer.data) - r.offset*r.dtype.Size()) / r.dtype.Size()
}

// AsFloat32 interprets the buffer tail as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by availElems()
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), r.availElems())
}

// AsFloat64 interprets the buffer tail as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by availElems()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), r.availElems())
}

// AsInt32 interprets the buffer tail as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by availElems()
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), r.availElems())
}

// AsInt64 interprets the buffer tail as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by availElems()
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), r.availElems())
}

// AsUint8 interprets the buffer tail as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", r.dtype))
	}
	return r.Data() // Already []byte = []uint8
}

// AsBool interprets the buffer tail as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by availElems()
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), r.availElems())
}

// Clone creates a new descriptor aliasing the same buffer (reference
// counted, no element copy).
func (r *RawTensor) Clone() *RawTensor {
	return r.view(r.shape.Clone(), r.stride.Clone(), r.offset)
}

// Release decrements the buffer's reference count and deallocates when it
// reaches 0.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this view is the only reference to the buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.isUnique()
}

// String returns a human-readable descriptor summary.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor[%s]%v strides=%v offset=%d", r.dtype, r.shape, r.stride, r.offset)
}
