package tensor

import "fmt"

// Reshape returns a view with the requested shape when the source strides
// allow it, and a row-major copy otherwise. The logical row-major element
// sequence of the input is preserved either way.
//
// One dimension may be -1; it is inferred from the element count.
// Returns ErrShapeMismatch if the element counts cannot be made to agree.
func Reshape(x *RawTensor, newShape Shape) (*RawTensor, error) {
	actual, err := resolveShape(x.NumElements(), newShape)
	if err != nil {
		return nil, fmt.Errorf("Reshape: %w", err)
	}

	if actual.NumElements() != x.NumElements() {
		return nil, fmt.Errorf("Reshape: cannot reshape %v (%d elements) to %v (%d elements): %w",
			x.shape, x.NumElements(), actual, actual.NumElements(), ErrShapeMismatch)
	}

	if strides, ok := viewStrides(x.shape, x.stride, actual); ok {
		return x.view(actual, strides, x.offset), nil
	}

	// Strides are not collapsible into the requested boundaries; the
	// element sequence has to be materialized.
	out := materialize(x)
	out.shape = actual
	out.stride = actual.ComputeStrides()
	return out, nil
}

// resolveShape validates the requested dimensions and infers a single -1
// dimension from the total element count.
func resolveShape(numElements int, requested Shape) (Shape, error) {
	inferIdx := -1
	product := 1
	for i, dim := range requested {
		switch {
		case dim == -1:
			if inferIdx >= 0 {
				return nil, fmt.Errorf("can only have one -1 dimension in %v: %w", requested, ErrShapeMismatch)
			}
			inferIdx = i
		case dim <= 0:
			return nil, fmt.Errorf("dimensions must be positive, got %d: %w", dim, ErrShapeMismatch)
		default:
			product *= dim
		}
	}

	actual := requested.Clone()
	if inferIdx >= 0 {
		if numElements%product != 0 {
			return nil, fmt.Errorf("cannot infer dimension for shape %v from %d elements: %w",
				requested, numElements, ErrShapeMismatch)
		}
		actual[inferIdx] = numElements / product
	}
	return actual, nil
}

// Transpose returns a view with two axes swapped. Always O(1), never
// copies. Negative axes index from the end.
func Transpose(x *RawTensor, dim0, dim1 int) (*RawTensor, error) {
	d0, err := normalizeAxis(dim0, x.shape.Rank())
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	d1, err := normalizeAxis(dim1, x.shape.Rank())
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}

	shape := x.shape.Clone()
	strides := x.stride.Clone()
	shape[d0], shape[d1] = shape[d1], shape[d0]
	strides[d0], strides[d1] = strides[d1], strides[d0]
	return x.view(shape, strides, x.offset), nil
}

// Permute returns a view with axes reordered by the given permutation of
// {0,…,rank-1}. Always O(1), never copies.
func Permute(x *RawTensor, axes ...int) (*RawTensor, error) {
	rank := x.shape.Rank()
	if len(axes) != rank {
		return nil, fmt.Errorf("Permute: got %d axes for rank %d: %w", len(axes), rank, ErrAxisOutOfRange)
	}

	seen := make([]bool, rank)
	shape := make(Shape, rank)
	strides := make(Strides, rank)
	for i, ax := range axes {
		if ax < 0 || ax >= rank {
			return nil, fmt.Errorf("Permute: axis %d out of range [0, %d): %w", ax, rank, ErrAxisOutOfRange)
		}
		if seen[ax] {
			return nil, fmt.Errorf("Permute: axis %d repeated in %v: %w", ax, axes, ErrAxisOutOfRange)
		}
		seen[ax] = true
		shape[i] = x.shape[ax]
		strides[i] = x.stride[ax]
	}
	return x.view(shape, strides, x.offset), nil
}

// Flatten returns a rank-1 view (or copy) of all elements in row-major
// order. It is exactly Reshape to a single dimension and inherits its
// view-vs-copy decision.
func Flatten(x *RawTensor) *RawTensor {
	out, err := Reshape(x, Shape{x.NumElements()})
	if err != nil {
		// Reshape to the own element count cannot mismatch.
		panic(err)
	}
	return out
}

// Contiguous returns a view guaranteed to satisfy IsContiguous. An
// already-contiguous input is returned as an alias of the same buffer;
// otherwise the elements are copied into canonical row-major layout.
func Contiguous(x *RawTensor) *RawTensor {
	if x.IsContiguous() {
		return x.Clone()
	}
	return materialize(x)
}

// Squeeze returns a view with the given size-1 axes removed, or with all
// size-1 axes removed when none are named. Squeezing every dimension
// yields a scalar view.
func Squeeze(x *RawTensor, axes ...int) (*RawTensor, error) {
	rank := x.shape.Rank()
	drop := make([]bool, rank)

	if len(axes) == 0 {
		for i, n := range x.shape {
			drop[i] = n == 1
		}
	} else {
		for _, ax := range axes {
			a, err := normalizeAxis(ax, rank)
			if err != nil {
				return nil, fmt.Errorf("Squeeze: %w", err)
			}
			if x.shape[a] != 1 {
				return nil, fmt.Errorf("Squeeze: axis %d has size %d, not 1: %w", a, x.shape[a], ErrShapeMismatch)
			}
			drop[a] = true
		}
	}

	shape := make(Shape, 0, rank)
	strides := make(Strides, 0, rank)
	for i := range x.shape {
		if !drop[i] {
			shape = append(shape, x.shape[i])
			strides = append(strides, x.stride[i])
		}
	}
	return x.view(shape, strides, x.offset), nil
}

// Unsqueeze returns a view with a size-1 axis inserted before position
// axis. Valid positions are [0, rank]; negative axes index from the end
// of the output rank.
func Unsqueeze(x *RawTensor, axis int) (*RawTensor, error) {
	rank := x.shape.Rank()
	a := axis
	if a < 0 {
		a += rank + 1
	}
	if a < 0 || a > rank {
		return nil, fmt.Errorf("Unsqueeze: axis %d out of range [0, %d]: %w", axis, rank, ErrAxisOutOfRange)
	}

	shape := make(Shape, 0, rank+1)
	strides := make(Strides, 0, rank+1)
	shape = append(shape, x.shape[:a]...)
	strides = append(strides, x.stride[:a]...)

	// Stride keeps the new axis collapsible with its right neighbor.
	if a < rank {
		shape = append(shape, 1)
		strides = append(strides, x.stride[a]*x.shape[a])
	} else {
		shape = append(shape, 1)
		strides = append(strides, 1)
	}

	shape = append(shape, x.shape[a:]...)
	strides = append(strides, x.stride[a:]...)
	return x.view(shape, strides, x.offset), nil
}

// Expand broadcasts size-1 axes to larger sizes without copying, using
// stride 0 for the repeated axes. A size of -1 keeps the current size.
// sizes may have higher rank than the input; the extra leading axes are
// treated as size 1. Expanding a non-1 axis to a different size is
// ErrShapeMismatch.
func Expand(x *RawTensor, sizes ...int) (*RawTensor, error) {
	rank := x.shape.Rank()
	if len(sizes) < rank {
		return nil, fmt.Errorf("Expand: %d sizes for rank %d: %w", len(sizes), rank, ErrShapeMismatch)
	}

	lead := len(sizes) - rank
	shape := make(Shape, len(sizes))
	strides := make(Strides, len(sizes))

	for i, target := range sizes {
		cur, curStride := 1, 0
		if i >= lead {
			cur = x.shape[i-lead]
			curStride = x.stride[i-lead]
		}

		switch {
		case target == -1:
			if i < lead {
				return nil, fmt.Errorf("Expand: -1 not allowed for new leading axis %d: %w", i, ErrShapeMismatch)
			}
			shape[i] = cur
			strides[i] = curStride
		case target == cur:
			shape[i] = cur
			strides[i] = curStride
		case cur == 1 && target > 0:
			shape[i] = target
			strides[i] = 0
		default:
			return nil, fmt.Errorf("Expand: cannot expand axis %d from size %d to %d: %w",
				i, cur, target, ErrShapeMismatch)
		}
	}
	return x.view(shape, strides, x.offset), nil
}

// Narrow returns a view of length elements along dim starting at start.
// The strides are unchanged; only the offset advances, so the result is
// always a view.
func Narrow(x *RawTensor, dim, start, length int) (*RawTensor, error) {
	d, err := normalizeAxis(dim, x.shape.Rank())
	if err != nil {
		return nil, fmt.Errorf("Narrow: %w", err)
	}
	if start < 0 || length < 1 || start+length > x.shape[d] {
		return nil, fmt.Errorf("Narrow: window [%d, %d) outside dimension %d of size %d: %w",
			start, start+length, d, x.shape[d], ErrAxisOutOfRange)
	}

	shape := x.shape.Clone()
	shape[d] = length
	return x.view(shape, x.stride.Clone(), x.offset+start*x.stride[d]), nil
}

// normalizeAxis resolves a possibly-negative axis against rank.
func normalizeAxis(axis, rank int) (int, error) {
	a := axis
	if a < 0 {
		a += rank
	}
	if a < 0 || a >= rank {
		return 0, fmt.Errorf("axis %d out of range [0, %d): %w", axis, rank, ErrAxisOutOfRange)
	}
	return a, nil
}

// materialize copies the view's elements, in row-major order of its
// shape, into a fresh buffer with canonical strides and offset 0.
func materialize(x *RawTensor) *RawTensor {
	out, err := NewRaw(x.shape.Clone(), x.dtype)
	if err != nil {
		// The source shape was validated at construction.
		panic(err)
	}

	switch x.dtype {
	case Float32:
		gatherRowMajor(out.AsFloat32(), x.AsFloat32(), x.shape, x.stride)
	case Float64:
		gatherRowMajor(out.AsFloat64(), x.AsFloat64(), x.shape, x.stride)
	case Int32:
		gatherRowMajor(out.AsInt32(), x.AsInt32(), x.shape, x.stride)
	case Int64:
		gatherRowMajor(out.AsInt64(), x.AsInt64(), x.shape, x.stride)
	case Uint8:
		gatherRowMajor(out.AsUint8(), x.AsUint8(), x.shape, x.stride)
	case Bool:
		gatherRowMajor(out.AsBool(), x.AsBool(), x.shape, x.stride)
	default:
		panic(fmt.Sprintf("materialize: unsupported dtype %v", x.dtype))
	}
	return out
}

// gatherRowMajor walks the strided source in row-major multi-index order
// and writes the element sequence densely into dst.
func gatherRowMajor[T any](dst, src []T, shape Shape, strides Strides) {
	total := shape.NumElements()
	rank := len(shape)
	idx := make([]int, rank)

	off := 0
	for i := 0; i < total; i++ {
		dst[i] = src[off]

		// Odometer increment from the fastest-varying axis.
		for k := rank - 1; k >= 0; k-- {
			idx[k]++
			off += strides[k]
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
			off -= strides[k] * shape[k]
		}
	}
}
