package tensor

import "fmt"

// FromSlice creates a tensor over a fresh buffer from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("FromSlice: shape %v requires %d elements, but got %d: %w",
			shape, shape.NumElements(), len(data), ErrShapeMismatch)
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	t := New[T](raw)
	copy(t.Data(), data)
	return t, nil
}

// Zeros creates a tensor filled with the zero value of T.
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}
	// Data is already zero-initialized by make()
	return New[T](raw), nil
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	data := t.Data()
	for i := range data[:shape.NumElements()] {
		data[i] = value
	}
	return t, nil
}

// Arange creates a rank-1 tensor with values [start, end) stepping by 1.
// Only numeric element types are supported.
func Arange[T DType](start, end int) (*Tensor[T], error) {
	if end < start {
		return nil, fmt.Errorf("Arange: end %d before start %d: %w", end, start, ErrShapeMismatch)
	}

	n := end - start
	t, err := Zeros[T](Shape{n})
	if err != nil {
		return nil, err
	}

	data := t.Data()
	var dummy T
	for i := 0; i < n; i++ {
		v := start + i
		switch any(dummy).(type) {
		case float32:
			data[i] = any(float32(v)).(T)
		case float64:
			data[i] = any(float64(v)).(T)
		case int32:
			data[i] = any(int32(v)).(T)
		case int64:
			data[i] = any(int64(v)).(T)
		case uint8:
			data[i] = any(uint8(v)).(T)
		default:
			panic("Arange: unsupported element type")
		}
	}
	return t, nil
}
