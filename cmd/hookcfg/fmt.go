// Package main provides the hookcfg CLI application.
package main

import (
	"bytes"
	"fmt"
	"os"

	herrors "github.com/cicd-ai-toolkit/hookcfg/pkg/errors"
	"github.com/cicd-ai-toolkit/hookcfg/pkg/observability"
	"github.com/cicd-ai-toolkit/hookcfg/pkg/precommit"
	"github.com/spf13/cobra"
)

func newFmtCmd(opts *rootFlags) *cobra.Command {
	var (
		write    bool
		check    bool
		noStrict bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Print a pre-commit document in canonical form",
		Long: `Validate a pre-commit document and print it in canonical form: two-space
indentation, block lists and no empty optional fields. Entry and hook
order is kept. Comments are not preserved.

With --check the command only reports whether the file is already in
canonical form. With --write the file is rewritten in place.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && check {
				return fmt.Errorf("--write and --check are mutually exclusive")
			}

			s, err := opts.session(cmd)
			if err != nil {
				return err
			}

			path := s.documentPaths(args)[0]
			doc, err := s.loadDocument(path, noStrict)
			if err != nil {
				return err
			}

			out, err := precommit.Marshal(doc)
			if err != nil {
				return err
			}

			switch {
			case check:
				orig, err := os.ReadFile(path)
				if err != nil {
					return herrors.ConfigError("failed to read document", err)
				}
				if !bytes.Equal(orig, out) {
					fmt.Fprintln(cmd.OutOrStdout(), path)
					return &exitError{code: ExitInvalid, err: fmt.Errorf("%s is not in canonical form", path)}
				}
				return nil
			case write:
				info, err := os.Stat(path)
				if err != nil {
					return herrors.ConfigError("failed to stat document", err)
				}
				if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
					return herrors.ConfigError("failed to write document", err)
				}
				s.log.Info("document rewritten", observability.String("path", path))
				return nil
			default:
				_, err := cmd.OutOrStdout().Write(out)
				return err
			}
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file in place")
	cmd.Flags().BoolVar(&check, "check", false, "Exit non-zero if the file is not in canonical form")
	cmd.Flags().BoolVar(&noStrict, "no-strict", false, "Do not check hook ids against the hook catalog")
	return cmd
}
