package tensor

import "errors"

// Sentinel errors surfaced by view operations. They are always detected
// before any allocation or copy begins; a failed operation leaves no
// partial state behind. Wrap sites add the operation name and the
// offending shapes, so callers match with errors.Is.
var (
	// ErrShapeMismatch reports a requested shape whose element count (or
	// per-dimension constraint, for Squeeze/Expand) does not fit the
	// source view.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrAxisOutOfRange reports an axis or index argument outside the
	// valid range for the view's rank.
	ErrAxisOutOfRange = errors.New("axis out of range")
)
