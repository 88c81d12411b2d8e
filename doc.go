// Package litweave generates side-by-side HTML documentation from
// annotated source files: prose comments rendered as formatted text on
// one side, syntax-highlighted code on the other.
//
// # Quick Start
//
// Create a service and run it over the source files:
//
//	svc, err := litweave.New(litweave.WithOutputDir("docs"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := svc.Run(ctx, []string{"lib/example.py"}); err != nil {
//	    log.Fatal(err)
//	}
//
// Each source file becomes one HTML page in the output directory, next
// to a shared stylesheet.
//
// # Pipeline
//
// The generation process follows these stages per file:
//
//  1. Language resolution by extension, with a content-based fallback
//     (chroma lexer analysis)
//  2. Section parsing: alternating comment/code blocks in file order
//  3. Joint syntax highlighting via chroma, with divider markers to
//     recover per-section fragments from the single highlighter pass
//  4. Comment preprocessing (section anchors, [[cross-references]]) and
//     Markdown rendering via goldmark
//  5. Page assembly through the embedded HTML template
//
// Code is highlighted in a single highlighter invocation per file
// because tokenizers are context-sensitive across lines; a synthetic
// full-line comment is inserted between code blocks and located again
// in the highlighted markup to split it back into per-section
// fragments.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := litweave.New(
//	    litweave.WithOutputDir("public"),
//	    litweave.WithInlineCSS(true),
//	)
//
// A YAML project file can configure the output directory and register
// additional languages; see LoadConfig.
package litweave
