package utils

import "errors"

// Error kinds shared by the mesh, boundary and material packages.
// Constructor and accessor failures wrap one of these; callers classify
// with errors.Is. None of them is retryable.
var (
	// ErrDegenerateInput: the input has nothing to analyze (e.g. zero voxels)
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrUnsupportedElementType: no face enumeration for this element
	ErrUnsupportedElementType = errors.New("unsupported element type")
	// ErrIndexOutOfRange: a bounds-checked accessor got an invalid index
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidParameter: a constructor got physically or structurally
	// invalid arguments
	ErrInvalidParameter = errors.New("invalid parameter")
)
