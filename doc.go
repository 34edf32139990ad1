// Package latexbuild renders parameterized LaTeX templates and drives an
// external LaTeX toolchain to a fixed point, producing a PDF, HTML, or DOCX
// artifact while leaving no temporary files behind.
//
// # Quick Start
//
// Create a builder for a template and build a PDF:
//
//	b, err := latexbuild.NewBuilder("templates", "report.tex",
//	    latexbuild.WithParams(map[string]any{"title": "Q3 Report"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := b.BuildPDF(ctx, "out/report.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned text is the fully rendered LaTeX source, useful for logging
// and diffing. Use BuildHTML and BuildDOCX for the other output formats.
//
// # Convergence
//
// LaTeX resolves cross-references, citations, and tables of contents only
// after enough passes, so the compiler is re-invoked against the rendered
// source until the .aux file it produces stops changing between runs. The
// loop is unbounded by default, matching the toolchain's own contract; use
// WithMaxPasses to bound it, or cancel the context to stop between passes.
//
// # Temporary Files
//
// Each build writes the rendered source to a uniquely named file next to the
// template, so concurrent builds against the same template never collide.
// Every file sharing the build's unique stem (the source itself plus the
// .aux, .log, and any other byproducts the compiler leaves) is deleted when
// the build ends, success or failure.
//
// # Templates
//
// Templates use pongo2 (Django/Jinja2) syntax. String parameter values are
// LaTeX-escaped recursively before rendering; use WithRawParams for values
// that must be injected verbatim, and WithFilters to register named
// transformation functions usable inside templates.
//
// # Toolchain Requirements
//
// Building requires the relevant binaries on PATH: pdflatex (or the command
// set via WithLatexCommand) for PDF, htlatex for HTML, and latex2rtf for
// DOCX. DOCX is a staged build: the primary compiler runs to convergence
// first, then latex2rtf consumes its result.
package latexbuild
