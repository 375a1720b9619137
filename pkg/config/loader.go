package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	files  []string
	prefix string
}

// WithEnvFiles loads the given env files before parsing. Missing files are an
// error. Earlier files take precedence over later ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithPrefix only considers variables starting with prefix. The prefix is
// stripped before matching struct tags.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load parses environment variables into v. Without WithEnvFiles it loads
// ./.env when present.
//
// Example:
//
//	type ServerConfig struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//		Dir  string `env:"DIR,required"`
//	}
//
//	var cfg ServerConfig
//	err := config.Load(&cfg)
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	} else if err := godotenv.Load(o.files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
