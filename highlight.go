package litweave

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Fixed container wrapped around every highlighter result. The
// reassembler strips it from the joined output before splitting and
// re-applies it to each fragment so every section renders as an
// independent highlighted block.
const (
	highlightStart = `<div class="highlight"><pre>`
	highlightEnd   = `</pre></div>`
)

// Highlighter abstracts the external syntax-highlighting service. The
// returned markup is always wrapped in the highlightStart/highlightEnd
// container with per-token spans inside.
type Highlighter interface {
	Highlight(ctx context.Context, code, languageName string) (string, error)
	GuessLanguage(code string) (string, error)
}

// chromaHighlighter highlights code using chroma (pure Go).
type chromaHighlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// newChromaHighlighter creates a highlighter emitting class-based markup
// compatible with the pygments class names the stylesheet targets.
func newChromaHighlighter() *chromaHighlighter {
	return &chromaHighlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			// The container is applied by Highlight itself so its exact
			// shape is under this package's control, not the formatter's.
			chromahtml.PreventSurroundingPre(true),
		),
		style: styles.Get("pygments"),
	}
}

// Highlight tokenises code as languageName and returns wrapped markup.
// Unknown language names fall back to chroma's plain-text lexer.
func (h *chromaHighlighter) Highlight(ctx context.Context, code, languageName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lexer := lexers.Get(languageName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return highlightStart + buf.String() + highlightEnd, nil
}

// GuessLanguage asks chroma's content analysis for a lexer name. Used
// for sources whose extension is not registered.
func (h *chromaHighlighter) GuessLanguage(code string) (string, error) {
	lexer := lexers.Analyse(code)
	if lexer == nil {
		return "", fmt.Errorf("%w: content analysis matched no lexer", ErrUnknownLanguage)
	}
	return lexer.Config().Name, nil
}

// reassemble runs the divider protocol: join every section's code with
// the language's divider token, highlight the joined text in a single
// pass (tokenizers are context-sensitive across lines, so per-section
// highlighting would break at block boundaries), then split the markup
// back into per-section fragments on the rendered divider.
//
// A fragment count mismatch is reported and degraded to empty fragments
// rather than aborting: losing one block's highlighting should not lose
// the rest of the file's documentation.
func reassemble(ctx context.Context, lang *Language, source string, sections []*Section, h Highlighter, logger *slog.Logger) error {
	markup, err := h.Highlight(ctx, joinCode(lang, sections), lang.Name)
	if err != nil {
		return fmt.Errorf("highlighting %s: %w", source, err)
	}

	markup = strings.TrimPrefix(markup, highlightStart)
	markup = strings.TrimSuffix(markup, highlightEnd)

	fragments := lang.SplitHighlighted(markup)
	if len(fragments) != len(sections) {
		logger.Warn("divider mismatch, some sections render without highlighting",
			"source", source,
			"sections", len(sections),
			"fragments", len(fragments),
			"err", ErrDividerMismatch)
	}

	for i, section := range sections {
		fragment := ""
		if i < len(fragments) {
			fragment = fragments[i]
		}
		section.CodeHTML = highlightStart + fragment + highlightEnd
	}
	return nil
}
