package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	latexbuild "github.com/CarbonAltDelete/latexbuild"
	"github.com/CarbonAltDelete/latexbuild/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"compiler failure", latexbuild.ErrCompilerRun, ExitCompiler},
		{"missing output", latexbuild.ErrOutputMissing, ExitCompiler},
		{"no convergence", latexbuild.ErrNoConvergence, ExitCompiler},
		{"wrapped compiler failure", fmt.Errorf("building: %w", latexbuild.ErrCompilerRun), ExitCompiler},
		{"file not found", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"bad root", latexbuild.ErrTemplateRootNotFound, ExitUsage},
		{"bad template", latexbuild.ErrTemplateNotFound, ExitUsage},
		{"bad extension", latexbuild.ErrOutputExtension, ExitUsage},
		{"render failure", latexbuild.ErrTemplateRender, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"bad jobs file", config.ErrJobsParse, ExitUsage},
		{"missing output flag", ErrMissingOutput, ExitUsage},
		{"unsupported format", ErrUnsupportedFormat, ExitUsage},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
