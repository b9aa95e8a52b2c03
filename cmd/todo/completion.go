package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacksmith/todo/internal/model"
)

// completionTimeout bounds the API call made while completing IDs.
const completionTimeout = 2 * time.Second

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for todo.

Task IDs are completed from the running server.

Bash:
  $ source <(todo completion bash)

Zsh:
  $ todo completion zsh > "${fpath[1]}/_todo"

Fish:
  $ todo completion fish | source
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeTaskIDs completes task IDs, described by their text.
func completeTaskIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	c, err := newClient()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx, cancel := context.WithTimeout(commandContext(cmd), completionTimeout)
	defer cancel()

	tasks, err := c.List(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return matchingIDs(tasks, args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// matchingIDs returns "id\ttext" entries for tasks whose ID starts with
// toComplete, skipping IDs already given.
func matchingIDs(tasks []model.Task, given []string, toComplete string) []string {
	seen := make(map[string]bool, len(given))
	for _, g := range given {
		seen[g] = true
	}

	prefix := strings.ToLower(toComplete)
	var completions []string
	for _, t := range tasks {
		if seen[t.ID] || !strings.HasPrefix(strings.ToLower(t.ID), prefix) {
			continue
		}
		completions = append(completions, t.ID+"\t"+firstLine(t.Text))
	}
	return completions
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
