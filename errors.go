package litweave

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoSources       = errors.New("no source files given")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrDividerMismatch = errors.New("highlighted output did not split one fragment per section")
	ErrHighlight       = errors.New("syntax highlighting failed")
	ErrProseRender     = errors.New("comment rendering failed")
	ErrTemplateRender  = errors.New("page template rendering failed")

	// Language registration errors.
	ErrEmptyLanguageName = errors.New("language name cannot be empty")
	ErrNoExtensions      = errors.New("language must map at least one extension")
	ErrEmptyComment      = errors.New("language comment marker cannot be empty")
	ErrDuplicateLanguage = errors.New("extension already registered")

	// Config errors.
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)
