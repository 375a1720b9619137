// Package command contains the CLI command constructors.
package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/clouch"
	"github.com/dmitrymomot/clouch/pkg/config"
	"github.com/dmitrymomot/clouch/pkg/httpserver"
	"github.com/dmitrymomot/clouch/pkg/logger"
)

type cliConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Clouch clouch.Config
	HTTP   httpserver.Config
}

type configKey struct{}

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	var (
		envFiles []string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "clouch [command] [flags]",
		Short:        "Classify user agents and turn click into touch for mobile visitors",
		Version:      version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var cfg cliConfig
			if err := config.Load(&cfg, config.WithEnvFiles(envFiles...)); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			log, err := newLogger(cfg, cmd)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)
			log.DebugContext(cmd.Context(), "configuration loaded", slog.Any("config", cfg))

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, &cfg))
			return nil
		},
	}

	cmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load before reading the environment")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(
		classifyCommand(),
		rewriteCommand(),
		serveCommand(),
	)

	return cmd
}

func newLogger(cfg cliConfig, cmd *cobra.Command) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "clouch"),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(clouch.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	return logger.New(opts...), nil
}
