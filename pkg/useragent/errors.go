package useragent

import "errors"

var (
	ErrInvalidRule      = errors.New("invalid user agent rule")
	ErrUnknownDimension = errors.New("unknown classification dimension")
	ErrUnknownField     = errors.New("unknown rule field key")
	ErrReadRules        = errors.New("failed to read user agent rules")
)
