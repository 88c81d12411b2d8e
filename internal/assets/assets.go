// Package assets holds the embedded page template and stylesheets.
package assets

import "embed"

//go:embed templates/*
var templates embed.FS

//go:embed styles/*
var styles embed.FS

// PageTemplate returns the HTML page template source.
func PageTemplate() string {
	return mustRead(templates, "templates/page.html")
}

// Stylesheet returns the full stylesheet written next to generated
// pages: page layout first, then the syntax-highlighting classes.
func Stylesheet() string {
	return mustRead(styles, "styles/layout.css") + "\n" + mustRead(styles, "styles/syntax.css")
}

// mustRead panics on a missing embedded file; the embed directive makes
// that a build defect, not a runtime condition.
func mustRead(fsys embed.FS, name string) string {
	data, err := fsys.ReadFile(name)
	if err != nil {
		panic("assets: " + err.Error())
	}
	return string(data)
}
