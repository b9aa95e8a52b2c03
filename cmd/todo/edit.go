package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/client"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> [text]...",
	Short: "Change a task's text",
	Long: `Change a task's text.

The ID may be any unique prefix. With -i the current text is opened in
$EDITOR and the saved file becomes the new text.

Examples:
  todo edit 3f2a buy oat milk
  todo edit 3f2a -i`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runEdit,
	ValidArgsFunction: completeTaskIDs,
}

var editInteractive bool

func init() {
	editCmd.Flags().BoolVarP(&editInteractive, "interactive", "i", false, "edit the text in $EDITOR")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if editInteractive && len(args) > 1 {
		return fmt.Errorf("cannot combine -i with text arguments")
	}
	if !editInteractive && len(args) < 2 {
		return fmt.Errorf("missing text; pass it as arguments or use -i")
	}

	ctx := commandContext(cmd)
	c, err := newClient()
	if err != nil {
		return err
	}
	tasks, err := c.List(ctx)
	if err != nil {
		return err
	}
	id, err := cli.MatchID(args[0], tasks)
	if err != nil {
		return err
	}

	var text string
	if editInteractive {
		var current string
		for _, t := range tasks {
			if t.ID == id {
				current = t.Text
			}
		}
		text, err = cli.EditText(current)
		if err != nil {
			return err
		}
		if text == current {
			fmt.Println("No changes.")
			return nil
		}
	} else {
		text = strings.Join(args[1:], " ")
	}

	task, err := c.Update(ctx, client.UpdateRequest{ID: id, Text: &text})
	if err != nil {
		return err
	}
	fmt.Printf("Updated %s: %s\n", task.ID, task.Text)
	return nil
}
