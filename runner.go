package latexbuild

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts external toolchain execution to enable testing
// without real subprocesses. Run executes name with args in dir, blocking
// until the process exits, and returns its combined stdout/stderr as lines.
// A non-zero exit or an unlaunchable binary is an error; partial output is
// still returned alongside it.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) ([]string, error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	lines := splitLines(out)
	if err != nil {
		return lines, fmt.Errorf("running %s: %w", name, err)
	}
	return lines, nil
}

// splitLines splits process output into lines, dropping a trailing newline
// so a final empty line is not reported.
func splitLines(out []byte) []string {
	s := strings.TrimSuffix(string(out), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
