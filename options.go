package clouch

import (
	"log/slog"

	"github.com/dmitrymomot/clouch/pkg/rewrite"
	"github.com/dmitrymomot/clouch/pkg/useragent"
)

// DefaultMaxBodySize is the largest response body buffered for rewriting.
const DefaultMaxBodySize int64 = 4 << 20

type options struct {
	classifier  *useragent.Classifier
	rewriter    *rewrite.Rewriter
	logger      *slog.Logger
	maxBodySize int64
	metrics     *Metrics
}

// Option configures the middleware.
type Option func(*options)

// WithClassifier sets the classifier. Defaults to the built-in rules with a
// small result cache.
func WithClassifier(c *useragent.Classifier) Option {
	return func(o *options) {
		if c != nil {
			o.classifier = c
		}
	}
}

// WithRewriter sets the rewriter and with it the device policy.
// Defaults to rewriting "click" to "touch" for mobile devices.
func WithRewriter(rw *rewrite.Rewriter) Option {
	return func(o *options) {
		if rw != nil {
			o.rewriter = rw
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxBodySize sets the buffering limit. Larger responses are streamed
// unchanged. Panics when n is not positive.
func WithMaxBodySize(n int64) Option {
	if n <= 0 {
		panic(ErrInvalidLimit)
	}
	return func(o *options) { o.maxBodySize = n }
}

// WithMetrics records classification and rewrite counters.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:      slog.New(slog.DiscardHandler),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.classifier == nil {
		o.classifier = useragent.New(useragent.WithCache(DefaultCacheSize))
	}
	if o.rewriter == nil {
		o.rewriter = rewrite.New(rewrite.WithLogger(o.logger))
	}
	return o
}
