package litweave

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Language describes one supported source language: how to recognize its
// full-line comments and how to recover divider markers from highlighted
// output. All patterns are compiled once, at registration.
type Language struct {
	Name    string // display name, must match the highlighter's lexer name
	Comment string // line-comment marker, e.g. "//" or "#"

	commentMatcher *regexp.Regexp
	dividerText    string
	dividerHTML    *regexp.Regexp
}

// IsComment reports whether line is a full-line comment.
func (l *Language) IsComment(line string) bool {
	return l.commentMatcher.MatchString(line)
}

// StripComment removes the comment marker (and at most one following
// space) from a comment line.
func (l *Language) StripComment(line string) string {
	return l.commentMatcher.ReplaceAllString(line, "")
}

// DividerText is the synthetic full-line comment inserted between code
// blocks before highlighting. It is syntactically inert in the language
// and cannot occur as user code because of the embedded newlines.
func (l *Language) DividerText() string { return l.dividerText }

// SplitHighlighted splits joined highlighter output on the rendered
// divider markers, tolerating surrounding blank lines the highlighter
// may add or strip.
func (l *Language) SplitHighlighted(markup string) []string {
	return l.dividerHTML.Split(markup, -1)
}

// compile populates the derived patterns from Name and Comment.
func (l *Language) compile() {
	marker := regexp.QuoteMeta(l.Comment)
	l.commentMatcher = regexp.MustCompile(`^\s*` + marker + `\s?`)
	l.dividerText = "\n" + l.Comment + "DIVIDER\n"
	// The highlighter wraps the divider comment in a span with a
	// comment token class (c, c1, cm, cp, ...) and may keep the
	// trailing newline inside the span.
	l.dividerHTML = regexp.MustCompile(
		`\n*<span class="c[^"]*">` + regexp.QuoteMeta(l.Comment+"DIVIDER") + `\n?</span>\n*`)
}

// LanguageGuesser guesses a language display name from file content.
// Used as the fallback when a path's extension is not registered.
type LanguageGuesser interface {
	GuessLanguage(code string) (string, error)
}

// Registry maps file extensions to language descriptors. It is built
// once at startup and read-only afterwards; constructing it explicitly
// (rather than a package-level table) keeps lookups free of ambient
// state and lets a config file add languages.
type Registry struct {
	byExt  map[string]*Language
	byName map[string]*Language
}

// builtinLanguages is the default extension table. Names follow the
// chroma lexer names so the content-based fallback can match them.
var builtinLanguages = []struct {
	name       string
	comment    string
	extensions []string
}{
	{"Go", "//", []string{".go"}},
	{"Python", "#", []string{".py"}},
	{"Ruby", "#", []string{".rb"}},
	{"JavaScript", "//", []string{".js", ".mjs"}},
	{"TypeScript", "//", []string{".ts"}},
	{"C", "//", []string{".c", ".h"}},
	{"C++", "//", []string{".cpp", ".cc", ".hpp"}},
	{"Java", "//", []string{".java"}},
	{"Rust", "//", []string{".rs"}},
	{"Swift", "//", []string{".swift"}},
	{"Kotlin", "//", []string{".kt"}},
	{"Scala", "//", []string{".scala"}},
	{"Bash", "#", []string{".sh", ".bash"}},
	{"Perl", "#", []string{".pl"}},
	{"R", "#", []string{".r"}},
	{"YAML", "#", []string{".yaml", ".yml"}},
	{"Tcl", "#", []string{".tcl"}},
	{"CoffeeScript", "#", []string{".coffee"}},
	{"SQL", "--", []string{".sql"}},
	{"Lua", "--", []string{".lua"}},
	{"Haskell", "--", []string{".hs"}},
	{"Scheme", ";;", []string{".scm"}},
	{"Erlang", "%%", []string{".erl"}},
}

// NewRegistry builds a registry with the built-in language table.
func NewRegistry() *Registry {
	r := &Registry{
		byExt:  make(map[string]*Language),
		byName: make(map[string]*Language),
	}
	for _, b := range builtinLanguages {
		// Built-in entries are known-good; Register only fails on
		// malformed input or duplicate extensions.
		if err := r.Register(b.name, b.comment, b.extensions...); err != nil {
			panic("litweave: built-in language table: " + err.Error())
		}
	}
	return r
}

// Register adds a language under the given extensions. Extensions are
// normalized to a leading dot and lower case.
func (r *Registry) Register(name, comment string, extensions ...string) error {
	if name == "" {
		return ErrEmptyLanguageName
	}
	if comment == "" {
		return fmt.Errorf("%w: %q", ErrEmptyComment, name)
	}
	if len(extensions) == 0 {
		return fmt.Errorf("%w: %q", ErrNoExtensions, name)
	}

	lang := &Language{Name: name, Comment: comment}
	lang.compile()

	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, exists := r.byExt[ext]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateLanguage, ext)
		}
		r.byExt[ext] = lang
	}
	r.byName[strings.ToLower(name)] = lang
	return nil
}

// Lookup finds a language by display name, case-insensitively.
func (r *Registry) Lookup(name string) (*Language, bool) {
	lang, ok := r.byName[strings.ToLower(name)]
	return lang, ok
}

// Resolve maps a source path to its language. When the extension is not
// registered, the file content is handed to the guesser; the guess is
// accepted only if it names a registered language. Misclassifying a file
// silently is worse than failing, so an unresolvable path is an error.
func (r *Registry) Resolve(path, source string, guesser LanguageGuesser) (*Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := r.byExt[ext]; ok {
		return lang, nil
	}

	if guesser != nil {
		name, err := guesser.GuessLanguage(source)
		if err == nil {
			if lang, ok := r.Lookup(name); ok {
				return lang, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, path)
}
