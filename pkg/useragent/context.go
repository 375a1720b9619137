package useragent

import "context"

type contextKey struct{}

// WithContext stores a classification result in ctx
func WithContext(ctx context.Context, res Result) context.Context {
	return context.WithValue(ctx, contextKey{}, res)
}

// FromContext returns the classification stored in ctx, if any
func FromContext(ctx context.Context) (Result, bool) {
	if ctx == nil {
		return Result{}, false
	}
	res, ok := ctx.Value(contextKey{}).(Result)
	return res, ok
}
