package latexbuild

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CarbonAltDelete/latexbuild/internal/fileutil"
)

// Builder builds documents from one LaTeX template. It validates its inputs
// eagerly at construction, so a Builder that exists can always attempt a
// build. Builders are safe for concurrent use: every build namespaces its
// temporary files with a unique random stem, and cleanup only ever touches
// files carrying that stem.
type Builder struct {
	root         string
	templateName string
	templatePath string

	params    map[string]any
	rawParams map[string]any
	filters   map[string]FilterFunc

	latexCmd  string
	maxPasses int

	logger   *slog.Logger
	runner   CommandRunner
	renderer templateRenderer
}

// NewBuilder creates a Builder for the template at root/templateName.
// It fails if root is not an existing directory or the resolved template is
// not an existing file.
func NewBuilder(root, templateName string, opts ...Option) (*Builder, error) {
	b := &Builder{
		root:         root,
		templateName: templateName,
		templatePath: filepath.Join(root, templateName),
		latexCmd:     DefaultLatexCommand,
		runner:       ExecRunner{},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrTemplateRootNotFound, root)
	}
	if !fileutil.FileExists(b.templatePath) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, b.templatePath)
	}

	if b.renderer == nil {
		r, err := NewRenderer(root, b.filters)
		if err != nil {
			return nil, err
		}
		b.renderer = r
	}

	return b, nil
}

// RenderText renders the template with the builder's parameters without
// invoking the toolchain.
func (b *Builder) RenderText() (string, error) {
	return b.renderer.Render(b.templateName, b.params, b.rawParams)
}

// auxSnapshot is one observation of the auxiliary file. A file that does not
// exist yet is a distinct state from one that exists empty, so the loop
// cannot converge prematurely on its first pass.
type auxSnapshot struct {
	content string
	exists  bool
}

// Run renders the template and drives the toolchain to a fixed point: the
// rendered text is written to a uniquely named source file next to the
// template, inv's primary command is invoked (with the source file appended,
// in the source's directory) until the .aux file stops changing between
// passes, a staged secondary command runs once afterwards, and the resulting
// artifact is moved to outPath. outPath's extension determines where the
// toolchain's initial output is expected.
//
// Every file sharing the build's unique stem is deleted before Run returns,
// on success and on every failure path. On success the rendered source text
// is returned.
func (b *Builder) Run(ctx context.Context, inv Invocation, outPath string) (string, error) {
	if err := inv.validate(); err != nil {
		return "", err
	}

	text, err := b.RenderText()
	if err != nil {
		return "", err
	}

	srcPath := fileutil.RandomNamePath(b.templatePath)
	dir := filepath.Dir(srcPath)
	stem := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	defer b.cleanup(dir, stem)

	if err := os.WriteFile(srcPath, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("writing temp source: %w", err)
	}

	passes, err := b.converge(ctx, inv.primary, srcPath)
	if err != nil {
		b.logger.Error("latex build failed", "template", b.templatePath, "error", err)
		return "", err
	}

	initialOut := filepath.Join(dir, stem+filepath.Ext(outPath))
	if inv.staged() {
		if err := b.runSecondary(ctx, inv.secondary, srcPath, initialOut); err != nil {
			b.logger.Error("latex build failed", "template", b.templatePath, "error", err)
			return "", err
		}
	}

	if !fileutil.FileExists(initialOut) {
		err := fmt.Errorf("%w: expected %q", ErrOutputMissing, initialOut)
		b.logger.Error("latex build failed", "template", b.templatePath, "error", err)
		return "", err
	}
	if err := fileutil.MoveFile(initialOut, outPath); err != nil {
		b.logger.Error("latex build failed", "template", b.templatePath, "error", err)
		return "", fmt.Errorf("moving output to %q: %w", outPath, err)
	}

	b.logger.Info("built document",
		"output", outPath,
		"template", b.templatePath,
		"passes", passes,
	)
	return text, nil
}

// converge invokes cmd (with srcPath appended) until two consecutive reads
// of the aux file are identical. It compares only once two snapshots exist,
// so at least two passes always run. Returns the number of passes issued.
func (b *Builder) converge(ctx context.Context, cmd []string, srcPath string) (int, error) {
	dir := filepath.Dir(srcPath)
	auxPath := strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + auxExtension
	args := append(cmd[1:len(cmd):len(cmd)], srcPath)

	var prev, curr auxSnapshot
	passes := 0
	for {
		if err := ctx.Err(); err != nil {
			return passes, err
		}

		lines, err := b.runner.Run(ctx, dir, cmd[0], args...)
		b.logger.Debug("compiler pass",
			"command", cmd[0],
			"pass", passes+1,
			"output", strings.Join(lines, "\n"),
		)
		if err != nil {
			return passes, fmt.Errorf("%w: %v", ErrCompilerRun, err)
		}
		passes++

		prev = curr
		curr, err = readAux(auxPath)
		if err != nil {
			return passes, err
		}
		if passes >= 2 && prev == curr {
			return passes, nil
		}
		if b.maxPasses > 0 && passes >= b.maxPasses {
			return passes, fmt.Errorf("%w: %d passes", ErrNoConvergence, passes)
		}
	}
}

// runSecondary runs the staged command once, with the output flag and the
// converged source appended, in the source's directory.
func (b *Builder) runSecondary(ctx context.Context, cmd []string, srcPath, outPath string) error {
	args := append(cmd[1:len(cmd):len(cmd)], "-o", outPath, srcPath)
	lines, err := b.runner.Run(ctx, filepath.Dir(srcPath), cmd[0], args...)
	b.logger.Debug("secondary pass",
		"command", cmd[0],
		"output", strings.Join(lines, "\n"),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCompilerRun, err)
	}
	return nil
}

// readAux snapshots the aux file, distinguishing absence from emptiness.
func readAux(path string) (auxSnapshot, error) {
	content, exists, err := fileutil.ReadFileIfExists(path)
	if err != nil {
		return auxSnapshot{}, fmt.Errorf("reading aux file: %w", err)
	}
	return auxSnapshot{content: content, exists: exists}, nil
}

// cleanup deletes every file in dir whose name starts with the build's
// unique stem: the temp source plus whatever the compiler produced next to
// it. Failures are logged, never returned, so a cleanup problem cannot mask
// a build error. Files belonging to other concurrent builds carry different
// stems and are never touched.
func (b *Builder) cleanup(dir, stem string) {
	paths, err := fileutil.ListWithPrefix(dir, stem)
	if err != nil {
		b.logger.Warn("listing temp files for cleanup", "dir", dir, "stem", stem, "error", err)
		return
	}
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			b.logger.Warn("removing temp file", "path", p, "error", err)
		}
	}
}
