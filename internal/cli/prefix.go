// Package cli provides terminal helpers for the todo commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/jacksmith/todo/internal/model"
)

// MatchID resolves an exact ID or a unique ID prefix against tasks.
// Matching is case-insensitive.
func MatchID(prefix string, tasks []model.Task) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("empty task ID")
	}
	lower := strings.ToLower(prefix)

	for _, t := range tasks {
		if strings.ToLower(t.ID) == lower {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(strings.ToLower(t.ID), lower) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task %s not found", prefix)
	case 1:
		return matches[0], nil
	default:
		short := make([]string, len(matches))
		for i, id := range matches {
			short[i] = model.ShortID(id, len(prefix)+4)
		}
		return "", fmt.Errorf("ambiguous task ID %q matches: %s", prefix, strings.Join(short, ", "))
	}
}
