// Package task implements the daily-task widget: a persisted checklist whose
// completion state resets once per day.
package task

import (
	"time"

	"blocpad/pkg/randid"
)

// idLength matches block ids so task ids look the same everywhere.
const idLength = 4

// Task is one checklist entry.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	URL       string `json:"url,omitempty"`
	Completed bool   `json:"completed"`
}

// DateStamp formats a day as the stored last-reset marker.
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}

// ResetForDay clears completion on all tasks when lastReset is not today.
// It returns the (possibly updated) tasks and whether a reset happened.
func ResetForDay(tasks []Task, lastReset string, today time.Time) ([]Task, bool) {
	if lastReset == DateStamp(today) {
		return tasks, false
	}

	out := make([]Task, len(tasks))
	for i, t := range tasks {
		t.Completed = false
		out[i] = t
	}
	return out, true
}

// New creates a task with a generated id.
func New(text, url string) Task {
	return Task{
		ID:   randid.Generate(idLength),
		Text: text,
		URL:  url,
	}
}

// Toggle flips the completion state of the task with the given id.
func Toggle(tasks []Task, id string) []Task {
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = !tasks[i].Completed
		}
	}
	return tasks
}

// Remove deletes the task with the given id.
func Remove(tasks []Task, id string) []Task {
	out := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
