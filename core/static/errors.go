package static

import "errors"

var (
	// ErrRootRequired is returned by Send when Options.Root is empty.
	ErrRootRequired = errors.New("static: root directory is required")

	// ErrOutsideRoot is returned by a Source when a name resolves outside its root.
	ErrOutsideRoot = errors.New("static: path resolves outside root directory")
)
