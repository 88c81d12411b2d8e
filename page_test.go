package litweave

import (
	"context"
	"html/template"
	"strings"
	"testing"

	"github.com/alnah/go-litweave/internal/assets"
)

func TestDestination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		outDir string
		source string
		want   string
	}{
		{
			name:   "extension replaced",
			outDir: "docs",
			source: "lib/example.py",
			want:   "docs/example.html",
		},
		{
			name:   "directory stripped",
			outDir: "docs",
			source: "deep/nested/path/main.go",
			want:   "docs/main.html",
		},
		{
			name:   "no extension keeps full name",
			outDir: "docs",
			source: "Makefile",
			want:   "docs/Makefile.html",
		},
		{
			name:   "custom output directory",
			outDir: "public",
			source: "a.py",
			want:   "public/a.html",
		},
		{
			name:   "dotfile keeps its name",
			outDir: "docs",
			source: ".bashrc",
			want:   "docs/.bashrc.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := destination(tt.outDir, tt.source); got != tt.want {
				t.Errorf("destination(%q, %q) = %q, want %q", tt.outDir, tt.source, got, tt.want)
			}
		})
	}
}

func TestTemplateRenderer(t *testing.T) {
	t.Parallel()

	resolve := func(source string) string { return destination("docs", source) }
	renderer, err := newTemplateRenderer(assets.PageTemplate(), resolve)
	if err != nil {
		t.Fatalf("newTemplateRenderer() failed: %v", err)
	}

	page := Page{
		Title:    "example.py",
		CSSFile:  StylesheetName,
		Sources:  []string{"a.py", "lib/example.py"},
		Multiple: true,
		Sections: []PageSection{
			{Index: 0, Docs: template.HTML("<p>intro</p>"), Code: template.HTML(`<div class="highlight"><pre>x = 1</pre></div>`)},
			{Index: 1, Docs: template.HTML("<p>more</p>"), Code: template.HTML(`<div class="highlight"><pre>y = 2</pre></div>`)},
		},
	}

	got, err := renderer.Render(context.Background(), page)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	wantContains := []string{
		"<title>example.py</title>",
		`<link rel="stylesheet" href="litweave.css"/>`,
		`id="section-0"`,
		`id="section-1"`,
		"<p>intro</p>",
		"x = 1",
		// Navigation links use the basename of each source's destination.
		`href="a.html"`,
		`href="example.html"`,
		">example.py</a>",
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("Render() output missing %q", want)
		}
	}
}

func TestTemplateRenderer_SingleSourceHasNoJumpList(t *testing.T) {
	t.Parallel()

	renderer, err := newTemplateRenderer(assets.PageTemplate(), func(s string) string {
		return destination("docs", s)
	})
	if err != nil {
		t.Fatalf("newTemplateRenderer() failed: %v", err)
	}

	page := Page{
		Title:   "a.py",
		CSSFile: StylesheetName,
		Sources: []string{"a.py"},
	}
	got, err := renderer.Render(context.Background(), page)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if strings.Contains(got, "jump_to") {
		t.Error("Render() included the jump list for a single source")
	}
}

func TestTemplateRenderer_InlineStyle(t *testing.T) {
	t.Parallel()

	renderer, err := newTemplateRenderer(assets.PageTemplate(), func(s string) string {
		return destination("docs", s)
	})
	if err != nil {
		t.Fatalf("newTemplateRenderer() failed: %v", err)
	}

	page := Page{
		Title:   "a.py",
		Style:   template.CSS("body { color: red; }"),
		Sources: []string{"a.py"},
	}
	got, err := renderer.Render(context.Background(), page)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if !strings.Contains(got, "<style>body { color: red; }</style>") {
		t.Error("Render() did not inline the stylesheet")
	}
	if strings.Contains(got, "<link") {
		t.Error("Render() linked the stylesheet despite inline style")
	}
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	got := sanitizeCSS("a { x: 1 } </style><script>")
	if strings.Contains(got, "</style>") {
		t.Errorf("sanitizeCSS() left a closing sequence: %q", got)
	}
}
