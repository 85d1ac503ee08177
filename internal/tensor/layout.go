package tensor

// isContiguous reports whether (shape, strides) matches the canonical
// row-major layout: iterating the view in row-major index order visits
// the buffer in strictly increasing, gap-free order.
//
// Dimensions of size 1 never count against contiguity; their stride
// value is unobservable because the only valid index is 0.
func isContiguous(shape Shape, strides Strides) bool {
	expected := 1
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] <= 1 {
			continue
		}
		if strides[i] != expected {
			return false
		}
		expected *= shape[i]
	}
	return true
}

// viewStrides decides whether a reshape from (shape, strides) to newShape
// can alias the source buffer. On success it returns the strides the new
// shape must carry; ok == false means the reshape has to materialize a
// copy. This is the single decision point shared by Reshape and Flatten.
//
// The source dimensions are collapsed into maximal jointly-contiguous
// runs: adjacent dims i, i+1 belong to one run when
// strides[i] == strides[i+1]*shape[i+1]. A zero-copy reshape exists
// exactly when every new dimension boundary falls inside such a run, so
// the algorithm walks both shapes left to right, pairing segments of
// equal element count and rejecting any segment whose source dims are
// not mutually contiguous.
//
// Precondition: shape.NumElements() == newShape.NumElements().
// Size-1 source dimensions are stride-agnostic and are dropped before
// matching; size-1 output dimensions receive a consistent filler stride.
func viewStrides(shape Shape, strides Strides, newShape Shape) (Strides, bool) {
	// Drop degenerate source dims; their strides carry no information.
	oShape := make(Shape, 0, len(shape))
	oStrides := make(Strides, 0, len(shape))
	for i, n := range shape {
		if n != 1 {
			oShape = append(oShape, n)
			oStrides = append(oStrides, strides[i])
		}
	}

	newStrides := make(Strides, len(newShape))

	oi, oj := 0, 1
	ni, nj := 0, 1
	for oi < len(oShape) && ni < len(newShape) {
		op := oShape[oi]
		np := newShape[ni]

		// Grow the smaller segment until both cover the same extent.
		for np != op {
			if np < op {
				np *= newShape[nj]
				nj++
			} else {
				op *= oShape[oj]
				oj++
			}
		}

		// The source segment must be one contiguous run.
		for k := oi; k < oj-1; k++ {
			if oStrides[k] != oStrides[k+1]*oShape[k+1] {
				return nil, false
			}
		}

		// Assign output strides from the fastest-varying side out.
		newStrides[nj-1] = oStrides[oj-1]
		for k := nj - 1; k > ni; k-- {
			newStrides[k-1] = newStrides[k] * newShape[k]
		}

		oi, oj = oj, oj+1
		ni, nj = nj, nj+1
	}

	// Remaining output dims are all size 1 (element counts match).
	filler := 1
	if ni > 0 {
		filler = newStrides[ni-1]
	}
	for k := ni; k < len(newShape); k++ {
		newStrides[k] = filler
	}

	return newStrides, true
}

// addressBounds returns the inclusive range of element addresses the view
// can reach, accounting for signed strides.
func addressBounds(offset int, shape Shape, strides Strides) (lo, hi int) {
	lo, hi = offset, offset
	for k, n := range shape {
		span := (n - 1) * strides[k]
		if span >= 0 {
			hi += span
		} else {
			lo += span
		}
	}
	return lo, hi
}
