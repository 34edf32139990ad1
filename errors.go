package latexbuild

import "errors"

// Sentinel errors for library operations.
var (
	// Construction/validation errors, detected before any process work.
	ErrTemplateRootNotFound = errors.New("template root is not an existing directory")
	ErrTemplateNotFound     = errors.New("template file not found")
	ErrOutputExtension      = errors.New("output path has wrong extension")
	ErrEmptyInvocation      = errors.New("compiler invocation cannot be empty")

	// Rendering errors.
	ErrTemplateRender = errors.New("template rendering failed")

	// Build errors.
	ErrCompilerRun   = errors.New("compiler invocation failed")
	ErrOutputMissing = errors.New("compiler produced no output artifact")
	ErrNoConvergence = errors.New("aux file did not stabilize within pass limit")
)
