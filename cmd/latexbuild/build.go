package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	latexbuild "github.com/CarbonAltDelete/latexbuild"
	"github.com/CarbonAltDelete/latexbuild/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingTemplate   = errors.New("exactly one template path is required")
	ErrMissingOutput     = errors.New("output path is required (-o)")
	ErrMissingRoot       = errors.New("template root is required (--root or config templateRoot)")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// buildSettings is the merge of config file values and command-line flags;
// flags win.
type buildSettings struct {
	root      string
	latexCmd  string
	maxPasses int
	workers   int
}

// runBuild builds a single document from flags.
func runBuild(ctx context.Context, args []string) error {
	f, positional, err := parseBuildFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return ErrMissingTemplate
	}
	if f.output == "" {
		return ErrMissingOutput
	}

	settings, err := resolveSettings(f.common)
	if err != nil {
		return err
	}

	var params map[string]any
	if f.paramsFile != "" {
		params, err = config.LoadParams(f.paramsFile)
		if err != nil {
			return err
		}
	}

	logger := newLogger(f.common.verbose, f.common.quiet)
	b, err := newBuilder(settings, positional[0], params, nil, logger)
	if err != nil {
		return err
	}

	_, err = buildByFormat(ctx, b, f.output)
	return err
}

// resolveSettings merges the config file (if any) with command-line flags.
func resolveSettings(f commonFlags) (buildSettings, error) {
	cfg := config.DefaultConfig()
	if f.config != "" {
		loaded, err := config.LoadConfig(f.config)
		if err != nil {
			return buildSettings{}, err
		}
		cfg = loaded
	}

	s := buildSettings{
		root:      cfg.TemplateRoot,
		latexCmd:  cfg.LatexCmd,
		maxPasses: cfg.MaxPasses,
		workers:   cfg.Workers,
	}
	if f.root != "" {
		s.root = f.root
	}
	if f.latexCmd != "" {
		s.latexCmd = f.latexCmd
	}
	if f.maxPasses > 0 {
		s.maxPasses = f.maxPasses
	}
	if s.root == "" {
		// Returned populated: batch may still get a root from the jobs file.
		return s, ErrMissingRoot
	}
	return s, nil
}

// newBuilder constructs a library Builder from resolved settings.
func newBuilder(s buildSettings, template string, params, rawParams map[string]any, logger *slog.Logger) (*latexbuild.Builder, error) {
	opts := []latexbuild.Option{latexbuild.WithLogger(logger)}
	if params != nil {
		opts = append(opts, latexbuild.WithParams(params))
	}
	if rawParams != nil {
		opts = append(opts, latexbuild.WithRawParams(rawParams))
	}
	if s.latexCmd != "" {
		opts = append(opts, latexbuild.WithLatexCommand(s.latexCmd))
	}
	if s.maxPasses > 0 {
		opts = append(opts, latexbuild.WithMaxPasses(s.maxPasses))
	}
	return latexbuild.NewBuilder(s.root, template, opts...)
}

// buildByFormat dispatches on the output extension.
func buildByFormat(ctx context.Context, b *latexbuild.Builder, outPath string) (string, error) {
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".pdf":
		return b.BuildPDF(ctx, outPath)
	case ".html":
		return b.BuildHTML(ctx, outPath)
	case ".docx":
		return b.BuildDOCX(ctx, outPath)
	default:
		return "", fmt.Errorf("%w: %q (want .pdf, .html, or .docx)", ErrUnsupportedFormat, filepath.Ext(outPath))
	}
}
