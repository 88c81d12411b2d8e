package litweave

import "strings"

// Parse splits raw source text into ordered sections, each pairing a run
// of full-line comments with the code that follows it. Concatenating
// every section's Comment and Code in order reproduces the input, minus
// comment markers and an interpreter directive line.
func Parse(lang *Language, source string) []*Section {
	lines := strings.Split(source, "\n")

	// An interpreter directive addresses the shell, not the reader.
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		lines = lines[1:]
	}

	// Splitting on "\n" leaves one empty trailing element when the
	// input ends with a newline; dropping it keeps Code/Comment from
	// growing a spurious blank line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var (
		sections []*Section
		comment  strings.Builder
		code     strings.Builder
		hasCode  bool
	)

	flush := func() {
		sections = append(sections, &Section{
			Index:   len(sections),
			Comment: comment.String(),
			Code:    code.String(),
		})
		comment.Reset()
		code.Reset()
		hasCode = false
	}

	for _, line := range lines {
		if lang.IsComment(line) {
			// Code since the last comment run closes the section;
			// consecutive comment lines keep accumulating.
			if hasCode {
				flush()
			}
			comment.WriteString(lang.StripComment(line))
			comment.WriteString("\n")
		} else {
			hasCode = true
			code.WriteString(line)
			code.WriteString("\n")
		}
	}
	flush()

	return sections
}

// joinCode concatenates every section's code with the language's divider
// token between adjacent sections. This is exactly the text submitted to
// the highlighter.
func joinCode(lang *Language, sections []*Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = s.Code
	}
	return strings.Join(parts, lang.DividerText())
}
