// Package main provides the hookcfg CLI application.
package main

import (
	"fmt"

	"github.com/cicd-ai-toolkit/hookcfg/pkg/observability"
	"github.com/cicd-ai-toolkit/hookcfg/pkg/output"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootFlags) *cobra.Command {
	var (
		noStrict bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate pre-commit configuration documents",
		Long: `Parse and validate one or more pre-commit configuration documents.

Every entry must name a repo, a rev and at least one hook with an id.
Hook ids of repositories in the hook catalog are checked unless
--no-strict is given. Without arguments the configured document
(.pre-commit-config.yaml by default) under --root is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.NewFormatter(format)
			if err != nil {
				return err
			}

			s, err := opts.session(cmd)
			if err != nil {
				return err
			}

			paths := s.documentPaths(args)
			results := make([]*output.Result, 0, len(paths))
			failed, worst := 0, ExitSuccess

			for _, path := range paths {
				doc, err := s.loadDocument(path, noStrict)
				if err != nil {
					failed++
					if code := exitCode(err); code > worst {
						worst = code
					}
				}
				results = append(results, output.NewResult(path, doc, err))
			}

			if err := formatter.Write(cmd.OutOrStdout(), results); err != nil {
				return err
			}

			if failed > 0 {
				s.log.Warn("validation failed", observability.Int("failed", failed), observability.Int("total", len(paths)))
				return &exitError{code: worst, err: fmt.Errorf("%d of %d documents invalid", failed, len(paths))}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noStrict, "no-strict", false, "Do not check hook ids against the hook catalog")
	cmd.Flags().StringVarP(&format, "format", "f", output.FormatText, "Output format (text, json)")
	return cmd
}
