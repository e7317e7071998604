package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/steveyegge/priority"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare the urgency of two priorities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parseArgs(args)
			if err != nil {
				return err
			}
			a, b := ps[0], ps[1]

			op := "=="
			switch priority.Compare(a, b) {
			case 1:
				op = ">"
			case -1:
				op = "<"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", colorize(a), op, colorize(b))
			return nil
		},
	}
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort NAME...",
		Short: "Sort priorities, most urgent first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parseArgs(args)
			if err != nil {
				return err
			}

			slices.SortStableFunc(ps, func(x, y priority.Priority) int {
				return priority.Compare(y, x)
			})
			for _, p := range ps {
				fmt.Fprintln(cmd.OutOrStdout(), colorize(p))
			}
			return nil
		},
	}
}
