package tree

import "errors"

// Build errors. Each one aborts the build with no partial tree, and the same
// input will fail the same way again, so callers must correct the input
// rather than retry.
var (
	// ErrInvalidInput flags a nil entry or a reserved empty path.
	ErrInvalidInput = errors.New("invalid entry input")

	// ErrDuplicateDirectory flags two directory entries sharing one path
	// during index construction.
	ErrDuplicateDirectory = errors.New("duplicate directory path")

	// ErrInconsistentHierarchy flags an entry resting below a path segment
	// that no directory entry declares, reported when the indexed build is
	// asked to require declared ancestors.
	ErrInconsistentHierarchy = errors.New("undeclared directory ancestor")

	// ErrInternalInvariant flags a broken builder invariant, such as an
	// ancestor walk running past its bound. It never indicates bad input.
	ErrInternalInvariant = errors.New("internal invariant violation")
)
