package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks in the order they were created.

Filter flags:
  --open   Show only open tasks
  --done   Show only completed tasks

Use --json for the raw API response.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listDone bool
	listOpen bool
	listJSON bool
)

// listIDWidth is how much of each ID the table shows.
const listIDWidth = 8

func init() {
	listCmd.Flags().BoolVar(&listDone, "done", false, "show only done tasks")
	listCmd.Flags().BoolVar(&listOpen, "open", false, "show only open tasks")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print tasks as JSON")
	listCmd.MarkFlagsMutuallyExclusive("done", "open")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listDone && listOpen {
		return fmt.Errorf("--done and --open are mutually exclusive")
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	tasks, err := c.List(commandContext(cmd))
	if err != nil {
		return err
	}

	var state *model.TaskState
	switch {
	case listDone:
		s := model.TaskStateDone
		state = &s
	case listOpen:
		s := model.TaskStateOpen
		state = &s
	}
	tasks = model.FilterByState(tasks, state)

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	cli.TaskTable(tasks, listIDWidth).Render(os.Stdout)

	open, done := model.CountByState(tasks)
	fmt.Println(cli.Gray(fmt.Sprintf("%d open, %d done", open, done)))
	return nil
}
