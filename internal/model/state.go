package model

// TaskState is the display state of a task.
type TaskState string

const (
	TaskStateOpen TaskState = "open"
	TaskStateDone TaskState = "done"
)

// State returns the display state of t.
func (t *Task) State() TaskState {
	if t.Completed {
		return TaskStateDone
	}
	return TaskStateOpen
}

// FilterByState returns the tasks whose state is state, preserving order.
// A nil state returns all tasks.
func FilterByState(tasks []Task, state *TaskState) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if state != nil && t.State() != *state {
			continue
		}
		out = append(out, t)
	}
	return out
}

// CountByState returns the number of open and done tasks.
func CountByState(tasks []Task) (open, done int) {
	for _, t := range tasks {
		if t.Completed {
			done++
		} else {
			open++
		}
	}
	return open, done
}
