package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/steveyegge/priority/internal/config"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE [CLASS...]",
		Short: "Validate a priority assignment file",
		Long: `Load and validate a YAML priority assignment file.

With no classes, prints every assigned class, most urgent first.
With classes, prints the priority each one resolves to.

PRIORITY_DEFAULT overrides the file's default priority.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			a, err := config.LoadAssignments(path)
			if err != nil {
				return err
			}
			if err := a.ApplyEnv(); err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("✓"), path)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  default\t%s\n", colorize(a.Default))
			if classes := args[1:]; len(classes) > 0 {
				for _, class := range classes {
					fmt.Fprintf(w, "  %s\t%s\n", class, colorize(a.Resolve(class)))
				}
			} else {
				for _, c := range a.Sorted() {
					fmt.Fprintf(w, "  %s\t%s\n", c.Class, colorize(c.Priority))
				}
			}
			return w.Flush()
		},
	}
}
