package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/steveyegge/priority"
)

func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List priorities, most urgent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := json.Marshal(priority.All())
				if err != nil {
					return fmt.Errorf("failed to encode priorities: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			gray := color.New(color.FgHiBlack).SprintFunc()
			for _, p := range priority.All() {
				var notes []string
				if p == priority.HighestAsync() {
					notes = append(notes, "highest async")
				}
				if p == priority.UnitTest() {
					notes = append(notes, "unit test")
				}

				if len(notes) > 0 {
					fmt.Fprintf(out, "%s  %s\n", colorize(p), gray("("+strings.Join(notes, ", ")+")"))
				} else {
					fmt.Fprintln(out, colorize(p))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as a JSON array of names")
	return cmd
}
