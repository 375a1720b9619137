package clouch

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/dmitrymomot/clouch/pkg/rewrite"
	"github.com/dmitrymomot/clouch/pkg/useragent"
)

// DefaultCacheSize is the number of classification results memoized by default.
const DefaultCacheSize = 1024

// Config is the environment form of the middleware options.
type Config struct {
	MaxBodySize    int64  `env:"CLOUCH_MAX_BODY_SIZE" envDefault:"4194304"`
	CacheSize      int    `env:"CLOUCH_CACHE_SIZE" envDefault:"1024"`
	RewriteTablets bool   `env:"CLOUCH_REWRITE_TABLETS" envDefault:"false"`
	RulesFile      string `env:"CLOUCH_RULES_FILE"`
}

// Classifier builds the classifier described by cfg, loading extra rules
// from RulesFile when set.
func (cfg Config) Classifier() (*useragent.Classifier, error) {
	opts := []useragent.Option{useragent.WithCache(cfg.CacheSize)}

	if cfg.RulesFile != "" {
		f, err := os.Open(cfg.RulesFile)
		if err != nil {
			return nil, errors.Join(ErrLoadRules, err)
		}
		defer f.Close()

		set, err := useragent.LoadRules(f)
		if err != nil {
			return nil, errors.Join(ErrLoadRules, fmt.Errorf("%s: %w", cfg.RulesFile, err))
		}
		opts = append(opts, useragent.WithRuleSet(set))
	}

	return useragent.New(opts...), nil
}

// Policy returns the device types rewritten under cfg.
func (cfg Config) Policy() []string {
	if cfg.RewriteTablets {
		return []string{useragent.DeviceTypeMobile, useragent.DeviceTypeTablet}
	}
	return []string{useragent.DeviceTypeMobile}
}

// NewFromConfig builds the middleware from cfg. Options in opts are applied
// after the ones derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) (func(http.Handler) http.Handler, error) {
	classifier, err := cfg.Classifier()
	if err != nil {
		return nil, err
	}

	var probe options
	for _, opt := range opts {
		opt(&probe)
	}

	configOpts := []Option{
		WithClassifier(classifier),
		WithRewriter(rewrite.New(
			rewrite.WithPolicy(cfg.Policy()...),
			rewrite.WithLogger(probe.logger),
		)),
	}
	if cfg.MaxBodySize > 0 {
		configOpts = append(configOpts, WithMaxBodySize(cfg.MaxBodySize))
	}

	return Middleware(append(configOpts, opts...)...), nil
}
