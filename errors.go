package clouch

import "errors"

var (
	ErrLoadRules    = errors.New("failed to load user agent rules")
	ErrInvalidLimit = errors.New("max body size must be positive")
)
