package latexbuild

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// BuildPDF builds a PDF at outPath using the primary compiler in
// non-interactive mode. Fails with ErrOutputExtension before any filesystem
// or process work if outPath does not end in .pdf.
func (b *Builder) BuildPDF(ctx context.Context, outPath string) (string, error) {
	if err := checkExtension(outPath, ".pdf"); err != nil {
		return "", err
	}
	return b.Run(ctx, Direct(b.latexCmd, "-interaction", "nonstopmode"), outPath)
}

// BuildHTML builds an HTML document at outPath using htlatex. Fails with
// ErrOutputExtension if outPath does not end in .html.
func (b *Builder) BuildHTML(ctx context.Context, outPath string) (string, error) {
	if err := checkExtension(outPath, ".html"); err != nil {
		return "", err
	}
	return b.Run(ctx, Direct(htmlCommand), outPath)
}

// BuildDOCX builds a DOCX document at outPath. latex2rtf needs the aux file
// of a converged primary compile, so this is a staged build: the primary
// compiler runs to convergence first, then latex2rtf once. Fails with
// ErrOutputExtension if outPath does not end in .docx.
func (b *Builder) BuildDOCX(ctx context.Context, outPath string) (string, error) {
	if err := checkExtension(outPath, ".docx"); err != nil {
		return "", err
	}
	return b.Run(ctx, Staged([]string{b.latexCmd}, []string{docxCommand}), outPath)
}

// checkExtension validates outPath's extension (case-insensitive).
func checkExtension(path, want string) error {
	got := filepath.Ext(path)
	if !strings.EqualFold(got, want) {
		return fmt.Errorf("%w: want %s, got %q", ErrOutputExtension, want, got)
	}
	return nil
}
