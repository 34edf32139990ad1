package latexbuild

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTemplate creates a template file under a fresh root and returns the
// root.
func writeTemplate(t *testing.T, name, content string) string {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("creating template dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing template: %v", err)
	}
	return root
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		template  string
		params    map[string]any
		rawParams map[string]any
		want      string
	}{
		{
			name:     "plain substitution",
			template: `Title: {{ title }}`,
			params:   map[string]any{"title": "Quarterly Report"},
			want:     `Title: Quarterly Report`,
		},
		{
			name:     "params are latex escaped",
			template: `{{ note }}`,
			params:   map[string]any{"note": "100% of A & B_C"},
			want:     `100\% of A \& B\_C`,
		},
		{
			name:     "escaping recurses into nested values",
			template: `{{ person.name }}`,
			params:   map[string]any{"person": map[string]any{"name": "A_B"}},
			want:     `A\_B`,
		},
		{
			name:      "raw params are verbatim",
			template:  `{{ preamble }}`,
			rawParams: map[string]any{"preamble": `\usepackage{graphicx}`},
			want:      `\usepackage{graphicx}`,
		},
		{
			name:      "raw params shadow escaped ones",
			template:  `{{ v }}`,
			params:    map[string]any{"v": "a_b"},
			rawParams: map[string]any{"v": "a_b"},
			want:      "a_b",
		},
		{
			name:     "loop over slice",
			template: `{% for item in items %}{{ item }};{% endfor %}`,
			params:   map[string]any{"items": []any{"x", "y"}},
			want:     `x;y;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := writeTemplate(t, "doc.tex", tt.template)
			r, err := NewRenderer(root, nil)
			if err != nil {
				t.Fatalf("NewRenderer: %v", err)
			}

			got, err := r.Render("doc.tex", tt.params, tt.rawParams)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderer_Filters(t *testing.T) {
	t.Parallel()

	root := writeTemplate(t, "doc.tex", `{{ name|latexbuild_test_shout }}`)
	filters := map[string]FilterFunc{
		"latexbuild_test_shout": func(in any, _ any) (any, error) {
			s, _ := in.(string)
			return strings.ToUpper(s), nil
		},
	}

	r, err := NewRenderer(root, filters)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	got, err := r.Render("doc.tex", map[string]any{"name": "world"}, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "WORLD" {
		t.Errorf("Render = %q, want %q", got, "WORLD")
	}

	// Registration is global in pongo2; constructing another renderer with
	// the same filter name must not fail.
	if _, err := NewRenderer(root, filters); err != nil {
		t.Errorf("re-registering same filter name: %v", err)
	}
}

func TestRenderer_FilterError(t *testing.T) {
	t.Parallel()

	root := writeTemplate(t, "doc.tex", `{{ v|latexbuild_test_fail }}`)
	filters := map[string]FilterFunc{
		"latexbuild_test_fail": func(any, any) (any, error) {
			return nil, errors.New("bad value")
		},
	}

	r, err := NewRenderer(root, filters)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	if _, err := r.Render("doc.tex", map[string]any{"v": "x"}, nil); !errors.Is(err, ErrTemplateRender) {
		t.Errorf("expected ErrTemplateRender, got %v", err)
	}
}

func TestRenderer_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()
		root := writeTemplate(t, "doc.tex", `ok`)
		r, err := NewRenderer(root, nil)
		if err != nil {
			t.Fatalf("NewRenderer: %v", err)
		}
		if _, err := r.Render("missing.tex", nil, nil); !errors.Is(err, ErrTemplateRender) {
			t.Errorf("expected ErrTemplateRender, got %v", err)
		}
	})

	t.Run("template syntax error", func(t *testing.T) {
		t.Parallel()
		root := writeTemplate(t, "doc.tex", `{% if %}`)
		r, err := NewRenderer(root, nil)
		if err != nil {
			t.Fatalf("NewRenderer: %v", err)
		}
		if _, err := r.Render("doc.tex", nil, nil); !errors.Is(err, ErrTemplateRender) {
			t.Errorf("expected ErrTemplateRender, got %v", err)
		}
	})

	t.Run("nil filter function", func(t *testing.T) {
		t.Parallel()
		root := writeTemplate(t, "doc.tex", `ok`)
		if _, err := NewRenderer(root, map[string]FilterFunc{"broken": nil}); err == nil {
			t.Error("expected error for nil filter function")
		}
	})
}

func TestRenderer_SubdirectoryTemplate(t *testing.T) {
	t.Parallel()

	root := writeTemplate(t, filepath.Join("letters", "cover.tex"), `Dear {{ who }},`)
	r, err := NewRenderer(root, nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	got, err := r.Render("letters/cover.tex", map[string]any{"who": "Sam"}, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "Dear Sam," {
		t.Errorf("Render = %q", got)
	}
}
