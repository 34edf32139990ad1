package latexbuild

import (
	"errors"
	"testing"
)

func TestInvocation(t *testing.T) {
	t.Parallel()

	t.Run("direct is not staged", func(t *testing.T) {
		t.Parallel()
		inv := Direct("pdflatex", "-interaction", "nonstopmode")
		if inv.staged() {
			t.Error("Direct invocation reports staged")
		}
		if err := inv.validate(); err != nil {
			t.Errorf("validate: %v", err)
		}
	})

	t.Run("staged", func(t *testing.T) {
		t.Parallel()
		inv := Staged([]string{"pdflatex"}, []string{"latex2rtf"})
		if !inv.staged() {
			t.Error("Staged invocation reports direct")
		}
		if err := inv.validate(); err != nil {
			t.Errorf("validate: %v", err)
		}
	})

	t.Run("empty primary rejected", func(t *testing.T) {
		t.Parallel()
		if err := Direct().validate(); !errors.Is(err, ErrEmptyInvocation) {
			t.Errorf("expected ErrEmptyInvocation, got %v", err)
		}
		if err := Staged(nil, []string{"latex2rtf"}).validate(); !errors.Is(err, ErrEmptyInvocation) {
			t.Errorf("expected ErrEmptyInvocation, got %v", err)
		}
	})

	t.Run("arguments are cloned", func(t *testing.T) {
		t.Parallel()
		args := []string{"pdflatex"}
		inv := Direct(args...)
		args[0] = "mutated"
		if inv.primary[0] != "pdflatex" {
			t.Error("Direct did not clone its arguments")
		}
	})
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	t.Run("negative max passes", func(t *testing.T) {
		t.Parallel()
		defer func() {
			if recover() == nil {
				t.Error("expected panic for negative max passes")
			}
		}()
		WithMaxPasses(-1)
	})

	t.Run("empty latex command", func(t *testing.T) {
		t.Parallel()
		defer func() {
			if recover() == nil {
				t.Error("expected panic for empty latex command")
			}
		}()
		WithLatexCommand("")
	})
}
