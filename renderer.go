package latexbuild

import (
	"errors"
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// FilterFunc is a named transformation usable inside templates, e.g.
// {{ total|money }}.
type FilterFunc func(in any, param any) (any, error)

// templateRenderer abstracts template rendering to allow test injection.
type templateRenderer interface {
	Render(name string, params, rawParams map[string]any) (string, error)
}

// Renderer renders pongo2 templates rooted at a template directory.
// It is stateless across Render calls and safe for concurrent use.
type Renderer struct {
	set *pongo2.TemplateSet
}

// NewRenderer creates a Renderer loading templates from root. Filters are
// registered globally by name; a name already registered (by an earlier
// Renderer or pongo2 itself) is left untouched, so repeated construction
// with the same filter set is idempotent.
func NewRenderer(root string, filters map[string]FilterFunc) (*Renderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(root)
	if err != nil {
		return nil, fmt.Errorf("creating template loader: %w", err)
	}
	for name, fn := range filters {
		if err := registerFilter(name, fn); err != nil {
			return nil, fmt.Errorf("registering filter %q: %w", name, err)
		}
	}
	return &Renderer{set: pongo2.NewSet("latexbuild", loader)}, nil
}

// Render renders the template at name (relative to the root) with the given
// parameters. Values in params are LaTeX-escaped recursively; values in
// rawParams are passed through verbatim and shadow escaped ones on key
// collision. Reads only the template tree, never writes.
func (r *Renderer) Render(name string, params, rawParams map[string]any) (string, error) {
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return "", fmt.Errorf("%w: loading %q: %v", ErrTemplateRender, name, err)
	}

	ctx := make(pongo2.Context, len(params)+len(rawParams))
	for k, v := range params {
		ctx[k] = EscapeValue(v)
	}
	for k, v := range rawParams {
		ctx[k] = v
	}

	out, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: executing %q: %v", ErrTemplateRender, name, err)
	}
	return out, nil
}

// registerFilter adapts a FilterFunc to pongo2's filter signature. pongo2
// keeps a global filter registry, so existing names are skipped rather than
// re-registered.
func registerFilter(name string, fn FilterFunc) error {
	if fn == nil {
		return errors.New("filter function is nil")
	}
	if pongo2.FilterExists(name) {
		return nil
	}
	return pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}
