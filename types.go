package latexbuild

import (
	"log/slog"
	"slices"
)

// Toolchain defaults.
const (
	// DefaultLatexCommand is the primary compiler used when none is
	// configured.
	DefaultLatexCommand = "pdflatex"

	htmlCommand = "htlatex"
	docxCommand = "latex2rtf"

	// auxExtension is the toolchain's cross-reference side file; its
	// stabilization across passes signals that reference resolution is done.
	auxExtension = ".aux"
)

// Invocation describes how the external toolchain is driven for one build.
// It is a tagged variant: a direct invocation runs a single command to
// convergence, a staged invocation additionally runs a secondary command
// once against the converged result. The variant is decided when the
// invocation is constructed, never inferred from argument contents.
type Invocation struct {
	primary   []string
	secondary []string
}

// Direct returns an invocation that runs args to convergence. The rendered
// source file is appended as the final argument on each pass.
func Direct(args ...string) Invocation {
	return Invocation{primary: slices.Clone(args)}
}

// Staged returns an invocation that runs primary to convergence, then runs
// secondary exactly once with an explicit output flag and the source file
// appended. This is the DOCX path: latex2rtf derives its document from a
// fully converged primary compile, not an independent one.
func Staged(primary, secondary []string) Invocation {
	return Invocation{
		primary:   slices.Clone(primary),
		secondary: slices.Clone(secondary),
	}
}

// staged reports whether a secondary invocation follows convergence.
func (inv Invocation) staged() bool {
	return len(inv.secondary) > 0
}

// validate checks the invocation shape before any filesystem or process
// work.
func (inv Invocation) validate() error {
	if len(inv.primary) == 0 {
		return ErrEmptyInvocation
	}
	if inv.staged() && inv.secondary[0] == "" {
		return ErrEmptyInvocation
	}
	return nil
}

// Option configures a Builder.
type Option func(*Builder)

// WithParams sets the template parameter mapping. String values (including
// those nested in maps and slices) are LaTeX-escaped before rendering.
func WithParams(params map[string]any) Option {
	return func(b *Builder) {
		b.params = params
	}
}

// WithRawParams sets parameters injected verbatim, without LaTeX escaping.
// On key collision they shadow escaped parameters.
func WithRawParams(params map[string]any) Option {
	return func(b *Builder) {
		b.rawParams = params
	}
}

// WithFilters registers named transformation functions usable inside
// templates.
func WithFilters(filters map[string]FilterFunc) Option {
	return func(b *Builder) {
		b.filters = filters
	}
}

// WithLatexCommand sets the primary compiler binary (default "pdflatex").
// It is used by BuildPDF and as stage A of DOCX builds.
func WithLatexCommand(cmd string) Option {
	if cmd == "" {
		panic("latexbuild: WithLatexCommand requires a non-empty command")
	}
	return func(b *Builder) {
		b.latexCmd = cmd
	}
}

// WithMaxPasses bounds the convergence loop. Zero (the default) means no
// bound, preserving the toolchain's own contract; exceeding a bound fails
// the build with ErrNoConvergence.
// Panics if n < 0 (programmer error, similar to time.NewTicker).
func WithMaxPasses(n int) Option {
	if n < 0 {
		panic("latexbuild: WithMaxPasses count must not be negative")
	}
	return func(b *Builder) {
		b.maxPasses = n
	}
}

// WithLogger sets the structured logger. Compiler output is logged at Debug,
// build completion at Info, cleanup problems at Warn.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithRunner replaces the subprocess runner (e.g., by tests).
func WithRunner(runner CommandRunner) Option {
	return func(b *Builder) {
		b.runner = runner
	}
}

// withRenderer replaces the template renderer; used by tests to avoid
// touching the template tree.
func withRenderer(r templateRenderer) Option {
	return func(b *Builder) {
		b.renderer = r
	}
}
