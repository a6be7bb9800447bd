package engine

import "errors"

var (
	// ErrNoPaths indicates a request without target paths.
	ErrNoPaths = errors.New("no target paths given")

	// ErrReferenceNotFound indicates the -r reference file does not exist.
	// This is fatal for the whole invocation.
	ErrReferenceNotFound = errors.New("reference file not found")

	// ErrEditorNotSet indicates --open was requested but no editor is
	// configured and $EDITOR is empty.
	ErrEditorNotSet = errors.New("EDITOR not set")
)
