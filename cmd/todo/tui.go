package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacksmith/todo/internal/logging"
	"github.com/jacksmith/todo/internal/tui"
	"github.com/jacksmith/todo/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal UI",
	Long: `Browse and edit tasks in an interactive terminal UI.

Keys:
  j/k      move
  space    toggle done
  a        add a task
  e        edit the selected task (enter saves, esc cancels)
  d        delete the selected task
  r        reload
  q        quit

Failed requests are shown on screen. Use --log-file to keep a log.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var tuiLogFile string

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "append logs to this file")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	logger := logging.Discard()
	if tuiLogFile != "" {
		f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		opts := logging.DefaultOptions()
		opts.Level = "debug"
		opts.Prefix = "tui"
		logger, err = logging.New(f, opts)
		if err != nil {
			return err
		}
	}

	return tui.Run(commandContext(cmd), ui.NewBoard(c, logger))
}
