package main

import (
	"errors"
	"os"

	latexbuild "github.com/CarbonAltDelete/latexbuild"
	"github.com/CarbonAltDelete/latexbuild/internal/config"
)

// Exit codes for the latexbuild CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful build
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitCompiler = 4 // Toolchain errors (failed compile, missing output, no convergence)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Toolchain errors (exit 4)
	if errors.Is(err, latexbuild.ErrCompilerRun) ||
		errors.Is(err, latexbuild.ErrOutputMissing) ||
		errors.Is(err, latexbuild.ErrNoConvergence) {
		return ExitCompiler
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, latexbuild.ErrTemplateRootNotFound) ||
		errors.Is(err, latexbuild.ErrTemplateNotFound) ||
		errors.Is(err, latexbuild.ErrOutputExtension) ||
		errors.Is(err, latexbuild.ErrEmptyInvocation) ||
		errors.Is(err, latexbuild.ErrTemplateRender) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrParamsParse) ||
		errors.Is(err, config.ErrJobsParse) ||
		errors.Is(err, config.ErrNoJobs) ||
		errors.Is(err, ErrMissingTemplate) ||
		errors.Is(err, ErrMissingOutput) ||
		errors.Is(err, ErrMissingRoot) ||
		errors.Is(err, ErrMissingJobsFile) ||
		errors.Is(err, ErrUnsupportedFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
