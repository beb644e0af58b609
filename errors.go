package gongwen

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput  = errors.New("input document cannot be empty")
	ErrFrontMatter = errors.New("malformed front matter")
	ErrSpecParse   = errors.New("failed to parse document spec")
	ErrAssemble    = errors.New("document assembly failed")

	// Layout validation errors.
	ErrInvalidLayout = errors.New("invalid layout")
)
