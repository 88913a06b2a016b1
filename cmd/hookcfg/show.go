// Package main provides the hookcfg CLI application.
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cicd-ai-toolkit/hookcfg/pkg/precommit"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141"))
	repoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

const columnGap = 2

func newShowCmd(opts *rootFlags) *cobra.Command {
	var (
		noStrict bool
		hooks    bool
	)

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "List the tool entries of a pre-commit document",
		Long: `Print one row per tool entry with its pinned revision, hook ids and
the number of additional dependencies. With --hooks every hook is listed
with its arguments and dependencies.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd)
			if err != nil {
				return err
			}

			doc, err := s.loadDocument(s.documentPaths(args)[0], noStrict)
			if err != nil {
				return err
			}

			renderTable(cmd.OutOrStdout(), doc)
			if hooks {
				fmt.Fprintln(cmd.OutOrStdout())
				renderHooks(cmd.OutOrStdout(), doc)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noStrict, "no-strict", false, "Do not check hook ids against the hook catalog")
	cmd.Flags().BoolVar(&hooks, "hooks", false, "List every hook with its arguments")
	return cmd
}

func renderTable(w io.Writer, doc *precommit.Document) {
	header := []string{"REPO", "REV", "HOOKS", "DEPS"}
	rows := make([][]string, 0, len(doc.Repos))
	for _, s := range doc.Summary() {
		rows = append(rows, []string{s.Repo, s.Rev, strings.Join(s.HookIDs, ","), strconv.Itoa(s.Dependencies)})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := lipgloss.Width(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	fmt.Fprintln(w, renderRow(header, widths, headerStyle))
	for _, row := range rows {
		fmt.Fprintln(w, renderRow(row, widths, repoStyle))
	}
}

// renderRow pads on the unstyled width so escape codes do not skew columns.
func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(style.Render(cell))
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+columnGap))
		}
	}
	return b.String()
}

func renderHooks(w io.Writer, doc *precommit.Document) {
	for _, entry := range doc.Repos {
		fmt.Fprintln(w, headerStyle.Render(entry.Repo+"@"+entry.Rev))
		for _, h := range entry.Hooks {
			fmt.Fprintf(w, "  - %s\n", repoStyle.Render(h.DisplayName()+" ("+h.ID+")"))
			if h.LanguageVersion != "" {
				fmt.Fprintln(w, detailStyle.Render("      language_version: "+h.LanguageVersion))
			}
			if len(h.Args) > 0 {
				fmt.Fprintln(w, detailStyle.Render("      args: "+strings.Join(h.Args, " ")))
			}
			if len(h.AdditionalDependencies) > 0 {
				fmt.Fprintln(w, detailStyle.Render("      additional_dependencies: "+strings.Join(h.AdditionalDependencies, ", ")))
			}
		}
	}
}
