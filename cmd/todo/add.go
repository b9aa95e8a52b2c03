package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a task",
	Long: `Add a task. Arguments are joined with spaces.

Examples:
  todo add buy milk
  todo add "call the plumber"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	task, err := c.Create(commandContext(cmd), strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Printf("Added %s: %s\n", task.ID, task.Text)
	return nil
}
