package command

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func classifyCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "classify [user-agent...]",
		Short: "classify user agent strings, one per line from stdin when no arguments are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			classifier, err := cfg.Clouch.Classifier()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			emit := func(ua string) error {
				res := classifier.Parse(ua)
				if short {
					_, err := fmt.Fprintln(out, res.ShortIdentifier())
					return err
				}
				return enc.Encode(res)
			}

			if len(args) > 0 {
				for _, ua := range args {
					if err := emit(ua); err != nil {
						return err
					}
				}
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
			for sc.Scan() {
				ua := strings.TrimSpace(sc.Text())
				if ua == "" {
					continue
				}
				if err := emit(ua); err != nil {
					return err
				}
			}
			return sc.Err()
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print a one-line summary instead of JSON")
	return cmd
}
