package litweave

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ProseRenderer abstracts the external lightweight-markup renderer used
// for comment text.
type ProseRenderer interface {
	Render(ctx context.Context, text string) (string, error)
}

// goldmarkRenderer renders comment Markdown to HTML using goldmark
// (pure Go).
type goldmarkRenderer struct {
	md goldmark.Markdown
}

// newGoldmarkRenderer creates a renderer with GFM extensions and syntax
// highlighting for fenced code blocks, sharing the chroma CSS classes
// the code column uses.
func newGoldmarkRenderer() *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Anchor rewrites from the cross-reference preprocessor are
			// raw HTML; the input is trusted local source files.
			html.WithUnsafe(),
		),
	)
	return &goldmarkRenderer{md: md}
}

// Render converts preprocessed comment text to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *goldmarkRenderer) Render(ctx context.Context, text string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(text), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrProseRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
