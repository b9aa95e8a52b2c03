// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/client"
	"github.com/jacksmith/todo/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a minimal to-do list server and client",
	Long: `todo runs a small to-do list web app and talks to it from the terminal.

"todo serve" starts the HTTP server with its browser UI and JSON API.
The other commands are clients of a running server.

Configuration is read from --config, else .todo.yaml in the working
directory, else ~/.todo.yaml. TODO_* environment variables override it.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	rootConfigPath string
	rootServer     string
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("todo version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "config file (default .todo.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootServer, "server", "", "server URL for client commands")
}

// loadConfig reads configuration and applies global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(rootConfigPath)
	if err != nil {
		return nil, err
	}
	if rootServer != "" {
		cfg.Server = rootServer
	}
	return cfg, nil
}

// newClient returns a client for the configured server. --server skips
// reading the config file.
func newClient() (*client.Client, error) {
	if rootServer != "" {
		return client.New(rootServer, nil)
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.Server, nil)
}

// commandContext returns cmd's context, or Background when cmd is nil or has none.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
