package litweave

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Precompiled rewrite patterns.
var (
	// Section-name declaration: a line fenced by three or more equals
	// signs on each side.
	sectionNamePattern = regexp.MustCompile(`(?m)^={3,}\s*(.*?)\s*={3,}\s*$`)

	// Cross-reference: [[target]] or [[target#anchor]].
	crossRefPattern = regexp.MustCompile(`\[\[(.+?)\]\]`)
)

// DestinationResolver maps a referenced source file to its generated
// output path.
type DestinationResolver func(source string) string

// Preprocess rewrites section-name declarations and cross-references in
// raw comment text, before prose rendering.
//
// A declaration line "=== My Section ===" becomes a named anchor whose
// name is the first whitespace-delimited token of the declared text,
// with the full text as the italicized visible label. A cross-reference
// [[other.py]] or [[other.py#anchor]] becomes a plain link to the
// basename of the resolved destination. Declarations are rewritten
// first and consume their whole line.
func Preprocess(comment string, resolve DestinationResolver) string {
	comment = sectionNamePattern.ReplaceAllStringFunc(comment, replaceSectionName)
	comment = crossRefPattern.ReplaceAllStringFunc(comment, func(match string) string {
		return replaceCrossRef(match, resolve)
	})
	return comment
}

func replaceSectionName(match string) string {
	label := sectionNamePattern.FindStringSubmatch(match)[1]
	name := ""
	if fields := strings.Fields(label); len(fields) > 0 {
		name = fields[0]
	}
	return fmt.Sprintf(`<a name="%s" href="#%s"><em>%s</em></a>`, name, name, label)
}

func replaceCrossRef(match string, resolve DestinationResolver) string {
	target := crossRefPattern.FindStringSubmatch(match)[1]

	target, anchor, hasAnchor := strings.Cut(target, "#")
	href := target
	if resolve != nil {
		href = filepath.Base(resolve(target))
	}
	if hasAnchor {
		// The anchor is passed through verbatim; whether it exists in
		// the referenced page is not checked.
		return fmt.Sprintf("[%s](%s#%s)", target, href, anchor)
	}
	return fmt.Sprintf("[%s](%s)", target, href)
}
