// Command priority lists, compares and checks task priorities.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/steveyegge/priority"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "priority",
		Short: "Inspect abstract task priorities",
		Long: `Inspect the abstract task priorities shared between parts of a program.

Priorities from most to least urgent: UserInteractive, UserInitiated,
Utility, Background. Unknown sorts below Background.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newListCmd(),
		newCompareCmd(),
		newSortCmd(),
		newCheckCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		os.Exit(1)
	}
}

// colorize renders p in the color used for its urgency
func colorize(p priority.Priority) string {
	var c *color.Color
	switch p {
	case priority.UserInteractive:
		c = color.New(color.FgRed, color.Bold)
	case priority.UserInitiated:
		c = color.New(color.FgYellow)
	case priority.Utility:
		c = color.New(color.FgCyan)
	case priority.Background:
		c = color.New(color.FgGreen)
	default:
		c = color.New(color.FgHiBlack)
	}
	return c.Sprint(p.String())
}

func parseArgs(args []string) ([]priority.Priority, error) {
	out := make([]priority.Priority, 0, len(args))
	for _, arg := range args {
		p, err := priority.Parse(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
