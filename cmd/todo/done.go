package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/client"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark task(s) as done",
	Long: `Mark one or more tasks as done. IDs may be unique prefixes.

Examples:
  todo done 3f2a
  todo done 3f2a a1b2`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runDone,
	ValidArgsFunction: completeTaskIDs,
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <id>...",
	Short: "Mark task(s) as not done",
	Long: `Clear the completed flag on one or more tasks. IDs may be unique prefixes.

Examples:
  todo reopen 3f2a`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runReopen,
	ValidArgsFunction: completeTaskIDs,
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(reopenCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	return setCompleted(cmd, args, true)
}

func runReopen(cmd *cobra.Command, args []string) error {
	return setCompleted(cmd, args, false)
}

// setCompleted updates each task in turn, reporting failures and returning
// an error only if none succeeded.
func setCompleted(cmd *cobra.Command, args []string, completed bool) error {
	ctx := commandContext(cmd)
	c, err := newClient()
	if err != nil {
		return err
	}
	tasks, err := c.List(ctx)
	if err != nil {
		return err
	}

	verb := "done"
	if !completed {
		verb = "reopened"
	}

	var failures []string
	for _, arg := range args {
		id, err := cli.MatchID(arg, tasks)
		if err == nil {
			_, err = c.Update(ctx, client.UpdateRequest{ID: id, Completed: &completed})
		}
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", arg, err))
			continue
		}
		fmt.Printf("%s %s.\n", id, verb)
	}

	if len(failures) > 0 {
		fmt.Println()
		for _, f := range failures {
			fmt.Printf("error: %s\n", f)
		}
		if len(failures) == len(args) {
			return fmt.Errorf("failed to update any tasks")
		}
	}
	return nil
}
