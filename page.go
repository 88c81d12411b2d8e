package litweave

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
)

// Page is the context handed to the template renderer: one generated
// document per source file.
type Page struct {
	Title    string        // base filename of the source
	Sections []PageSection // ordered, with rendered HTML per side
	Sources  []string      // every source path in this run, sorted
	Multiple bool          // more than one source: render the jump-to list
	Style    template.CSS  // non-empty in inline-CSS mode
	CSSFile  string        // stylesheet basename for the <link> element
}

// PageSection carries one section's rendered halves into the template.
// The HTML types mark the fragments as pre-escaped.
type PageSection struct {
	Index int
	Docs  template.HTML
	Code  template.HTML
}

// TemplateRenderer abstracts the external page template renderer.
type TemplateRenderer interface {
	Render(ctx context.Context, page Page) (string, error)
}

// htmlTemplateRenderer renders pages through html/template with the
// "base" and "destination" helpers available to the template.
type htmlTemplateRenderer struct {
	tmpl *template.Template
}

// newTemplateRenderer parses templateSource once. The destination
// resolver becomes the template's path-resolution helper.
func newTemplateRenderer(templateSource string, resolve DestinationResolver) (*htmlTemplateRenderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"base":        filepath.Base,
		"destination": resolve,
	}).Parse(templateSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return &htmlTemplateRenderer{tmpl: tmpl}, nil
}

// Render executes the page template.
func (r *htmlTemplateRenderer) Render(ctx context.Context, page Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// destination computes the output path for a source path: the base name
// with its extension replaced by .html, under outDir. A path with no
// extension separator keeps its full name unchanged.
func destination(outDir, source string) string {
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return filepath.Join(outDir, base+".html")
}

// sanitizeCSS escapes sequences that could close a <style> block
// prematurely when the stylesheet is inlined into a page.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
