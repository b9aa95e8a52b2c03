package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksmith/todo/internal/model"
)

func TestMatchID(t *testing.T) {
	tasks := []model.Task{
		{ID: "3f2a9c10-0000-4000-8000-000000000001", Text: "one"},
		{ID: "3f2b0000-0000-4000-8000-000000000002", Text: "two"},
		{ID: "a1b2c3d4-0000-4000-8000-000000000003", Text: "three"},
	}

	tests := []struct {
		name     string
		prefix   string
		want     string
		errorMsg string
	}{
		{name: "exact", prefix: tasks[0].ID, want: tasks[0].ID},
		{name: "exact case insensitive", prefix: "A1B2C3D4-0000-4000-8000-000000000003", want: tasks[2].ID},
		{name: "unique prefix", prefix: "a1", want: tasks[2].ID},
		{name: "longer unique prefix", prefix: "3f2a", want: tasks[0].ID},
		{name: "ambiguous", prefix: "3f2", errorMsg: "ambiguous task ID"},
		{name: "no match", prefix: "zz", errorMsg: "task zz not found"},
		{name: "empty", prefix: "", errorMsg: "empty task ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchID(tt.prefix, tasks)
			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchIDAmbiguousListsCandidates(t *testing.T) {
	tasks := []model.Task{{ID: "abcdef-1"}, {ID: "abcdef-2"}}

	_, err := MatchID("ab", tasks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abcdef")
}
