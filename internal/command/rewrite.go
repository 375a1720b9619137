package command

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/clouch/pkg/logger"
	"github.com/dmitrymomot/clouch/pkg/rewrite"
)

func rewriteCommand() *cobra.Command {
	var ua, output string

	cmd := &cobra.Command{
		Use:   "rewrite [file]",
		Short: "rewrite an HTML document as it would be served to the given user agent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			classifier, err := cfg.Clouch.Classifier()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						runErr = errors.Join(runErr, err)
					}
				}()
				out = f
			}

			log := slog.Default()
			res := classifier.Parse(ua)
			rw := rewrite.New(
				rewrite.WithPolicy(cfg.Clouch.Policy()...),
				rewrite.WithLogger(log),
			)

			st, err := rw.RewriteHTML(res, in, out)
			if err != nil {
				return err
			}
			log.InfoContext(cmd.Context(), "document processed",
				logger.Client(res.ShortIdentifier()),
				logger.DeviceType(res.Device.Type),
				logger.Rewritten(st.Rewritten),
				logger.Replacements(st.Replacements),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&ua, "ua", "", "user agent the document is served to")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	_ = cmd.MarkFlagRequired("ua")
	return cmd
}
