package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/todo/internal/cli"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Aliases: []string{"delete"},
	Short:   "Delete task(s)",
	Long: `Delete one or more tasks. IDs may be unique prefixes.

Examples:
  todo rm 3f2a
  todo rm 3f2a a1b2`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runRm,
	ValidArgsFunction: completeTaskIDs,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	c, err := newClient()
	if err != nil {
		return err
	}
	tasks, err := c.List(ctx)
	if err != nil {
		return err
	}

	var failures []string
	for _, arg := range args {
		id, err := cli.MatchID(arg, tasks)
		if err == nil {
			err = c.Delete(ctx, id)
		}
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", arg, err))
			continue
		}
		fmt.Printf("Deleted %s.\n", id)
	}

	if len(failures) > 0 {
		fmt.Println()
		for _, f := range failures {
			fmt.Printf("error: %s\n", f)
		}
		if len(failures) == len(args) {
			return fmt.Errorf("failed to delete any tasks")
		}
	}
	return nil
}
