package litweave

import (
	"io"
	"log/slog"
)

// Section is one contiguous comment block and the code that follows it,
// in source order. Comment holds the raw comment text with markers
// stripped; Code holds the raw code lines. Both preserve newlines.
// CommentHTML and CodeHTML are empty until the section has been through
// the rendering stages.
type Section struct {
	Index       int
	Comment     string
	Code        string
	CommentHTML string
	CodeHTML    string
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	outDir    string
	inlineCSS bool
	stdout    io.Writer
}

// DefaultOutputDir is where generated pages and the stylesheet land
// unless overridden.
const DefaultOutputDir = "docs"

// WithOutputDir sets the directory generated pages are written to.
// Empty dir keeps the default.
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.cfg.outDir = dir
		}
	}
}

// WithInlineCSS embeds the stylesheet into every generated page instead
// of linking a shared CSS file.
func WithInlineCSS(inline bool) Option {
	return func(s *Service) {
		s.cfg.inlineCSS = inline
	}
}

// WithRegistry replaces the built-in language registry.
func WithRegistry(r *Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStdout redirects the per-file progress lines (useful in tests).
func WithStdout(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.cfg.stdout = w
		}
	}
}

// WithHighlighter replaces the chroma-backed highlighter service.
func WithHighlighter(h Highlighter) Option {
	return func(s *Service) {
		if h != nil {
			s.highlighter = h
		}
	}
}

// WithProseRenderer replaces the goldmark-backed comment renderer.
func WithProseRenderer(r ProseRenderer) Option {
	return func(s *Service) {
		if r != nil {
			s.prose = r
		}
	}
}

// WithTemplateRenderer replaces the page template renderer.
func WithTemplateRenderer(r TemplateRenderer) Option {
	return func(s *Service) {
		if r != nil {
			s.templates = r
		}
	}
}
