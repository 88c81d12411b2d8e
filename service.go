package litweave

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-litweave/internal/assets"
	"github.com/alnah/go-litweave/internal/fileutil"
)

// Tool and output naming.
const (
	ToolName       = "litweave"
	StylesheetName = ToolName + ".css"
)

// Service orchestrates the documentation pipeline: parse sections,
// highlight code through the divider protocol, render comments, and
// assemble one page per source file.
type Service struct {
	cfg         serviceConfig
	registry    *Registry
	highlighter Highlighter
	prose       ProseRenderer
	templates   TemplateRenderer
	logger      *slog.Logger
}

// New creates a Service with default collaborators: the built-in
// language registry, the chroma highlighter, the goldmark comment
// renderer, and the embedded page template. Use options to customize
// behavior (e.g., WithOutputDir).
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			outDir: DefaultOutputDir,
			stdout: os.Stdout,
		},
		registry:    NewRegistry(),
		highlighter: newChromaHighlighter(),
		prose:       newGoldmarkRenderer(),
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the template renderer last so its destination helper sees
	// the configured output directory.
	if s.templates == nil {
		renderer, err := newTemplateRenderer(assets.PageTemplate(), s.Destination)
		if err != nil {
			return nil, err
		}
		s.templates = renderer
	}

	return s, nil
}

// Destination computes the output path for a source path. The mapping
// depends only on the immutable configuration, so repeated calls always
// agree; the template uses it to link between generated pages.
func (s *Service) Destination(source string) string {
	return destination(s.cfg.outDir, source)
}

// Run generates documentation for every source, strictly sequentially
// and in sorted path order. It ensures the output directory exists and
// writes the shared stylesheet before the first page. Any read, resolve,
// or write failure aborts the run.
func (s *Service) Run(ctx context.Context, sources []string) error {
	if len(sources) == 0 {
		return ErrNoSources
	}

	sorted := append([]string(nil), sources...)
	sort.Strings(sorted)

	if err := fileutil.EnsureDir(s.cfg.outDir); err != nil {
		return err
	}
	if !s.cfg.inlineCSS {
		cssPath := filepath.Join(s.cfg.outDir, StylesheetName)
		if err := os.WriteFile(cssPath, []byte(assets.Stylesheet()), 0o644); err != nil {
			return fmt.Errorf("writing stylesheet: %w", err)
		}
	}

	for _, source := range sorted {
		if err := s.generate(ctx, source, sorted); err != nil {
			return err
		}
	}
	return nil
}

// generate runs the pipeline for one source file and writes the page.
func (s *Service) generate(ctx context.Context, source string, sources []string) error {
	raw, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}

	lang, err := s.registry.Resolve(source, string(raw), s.highlighter)
	if err != nil {
		return err
	}
	s.logger.Debug("processing source", "source", source, "language", lang.Name)

	sections := Parse(lang, string(raw))

	if err := reassemble(ctx, lang, source, sections, s.highlighter, s.logger); err != nil {
		return err
	}
	if err := s.renderComments(ctx, sections); err != nil {
		return fmt.Errorf("rendering comments for %s: %w", source, err)
	}

	doc, err := s.assemble(ctx, source, sections, sources)
	if err != nil {
		return err
	}

	dest := s.Destination(source)
	if err := os.WriteFile(dest, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	fmt.Fprintf(s.cfg.stdout, "%s = %s -> %s\n", ToolName, source, dest)
	return nil
}

// renderComments preprocesses and renders each section's comment text.
func (s *Service) renderComments(ctx context.Context, sections []*Section) error {
	for _, section := range sections {
		text := Preprocess(section.Comment, s.Destination)
		html, err := s.prose.Render(ctx, text)
		if err != nil {
			return err
		}
		section.CommentHTML = html
	}
	return nil
}

// assemble builds the template context for one source and renders the
// final document.
func (s *Service) assemble(ctx context.Context, source string, sections []*Section, sources []string) (string, error) {
	page := Page{
		Title:    filepath.Base(source),
		Sources:  sources,
		Multiple: len(sources) > 1,
		CSSFile:  StylesheetName,
	}
	if s.cfg.inlineCSS {
		page.Style = template.CSS(sanitizeCSS(assets.Stylesheet()))
	}
	for _, section := range sections {
		page.Sections = append(page.Sections, PageSection{
			Index: section.Index,
			Docs:  template.HTML(section.CommentHTML),
			Code:  template.HTML(section.CodeHTML),
		})
	}

	doc, err := s.templates.Render(ctx, page)
	if err != nil {
		return "", fmt.Errorf("assembling %s: %w", source, err)
	}
	return doc, nil
}
