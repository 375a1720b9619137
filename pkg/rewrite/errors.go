package rewrite

import "errors"

var (
	ErrRead   = errors.New("failed to read HTML document")
	ErrParse  = errors.New("failed to parse HTML document")
	ErrRender = errors.New("failed to render HTML document")
	ErrWrite  = errors.New("failed to write HTML document")
)
