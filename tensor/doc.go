// Copyright 2026 TypeTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for TypeTensor's strided view engine.
//
// # Overview
//
// A tensor here is a lightweight descriptor — shape, per-dimension strides
// (in elements) and a base offset — over a flat, reference-counted buffer.
// Shape-transforming operations never mutate their input; they return a new
// descriptor that either aliases the same buffer (a view, O(1)) or owns a
// freshly copied one (a copy, O(n)).
//
// # Basic Usage
//
//	import "github.com/typetensor/typetensor/tensor"
//
//	func main() {
//	    x, _ := tensor.FromSlice([]int64{1, 2, 3, 4, 5, 6}, tensor.Shape{6})
//
//	    r, _ := x.Reshape(2, 3)      // view: strides collapse cleanly
//	    tr, _ := r.Transpose(0, 1)   // view: strides swapped, never copies
//	    fl := tr.Flatten()           // copy: permuted strides force it
//
//	    tr.IsContiguous()            // false
//	    fl.SharesStorageWith(x)      // false
//	}
//
// # View vs. copy
//
// Reshape (and Flatten, which is exactly Reshape to one dimension) aliases
// the source buffer whenever the source strides can be partitioned into
// jointly contiguous runs that the requested shape refines. When they
// cannot — after a transpose, for example — the row-major element sequence
// is materialized into a new buffer. Transpose, Permute, Squeeze,
// Unsqueeze, Expand and Narrow are always views. Contiguous returns its
// input aliased when already row-major, and a materialized copy otherwise.
//
// # Supported Element Types
//
// The DType constraint covers float32, float64, int32, int64, uint8 and
// bool. The underlying buffer is untyped; RawTensor carries the runtime
// DataType.
//
// # Memory Management
//
// Buffers are shared by reference counting. Release drops a view's
// reference; the buffer is freed when the last view holding it is
// released. Buffer contents are never mutated by a view-producing
// operation, so concurrent readers need no locking.
package tensor
