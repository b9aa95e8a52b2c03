package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacksmith/todo/internal/model"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export tasks as a seed file",
	Long: `Write the server's current tasks in the seed file format (YAML).

The output can be loaded back with "todo serve --seed <file>". IDs are
not kept; seeded tasks get fresh ones.

Examples:
  todo dump
  todo dump -o tasks.yaml`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

var dumpOutput string

func init() {
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	tasks, err := c.List(commandContext(cmd))
	if err != nil {
		return err
	}

	if dumpOutput != "" {
		if err := model.SaveSeed(dumpOutput, tasks); err != nil {
			return err
		}
		fmt.Printf("Wrote %d tasks to %s\n", len(tasks), dumpOutput)
		return nil
	}

	data, err := model.EncodeSeed(tasks)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
