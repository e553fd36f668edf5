// Package task implements a personal task list stored in a flat
// pipe-delimited text file.
//
// Each line of the backing file is one task: a name, a calendar date, and
// optionally a time of day. The Store owns the in-memory collection in
// storage order and rewrites the whole file after every mutation; Sorted
// produces a chronological view without disturbing the stored order.
//
// The public API mirrors the CLI commands:
//   - Open, Add, DeleteAt, Save for the collection lifecycle
//   - Tasks, Sorted for querying
//   - ParseLine and Task.Line for the wire format
package task

// TimeOfDay is a clock time attached to a timed task.
type TimeOfDay struct {
	// Hour is the hour of day (0-23).
	Hour int `json:"hour"`

	// Minute is the minute of the hour (0-59).
	Minute int `json:"minute"`
}

// Date is a calendar date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Task represents a single entry in the task list.
type Task struct {
	// Name is the task's label.
	Name string `json:"name"`

	// Date is the day the task is scheduled for.
	Date Date `json:"date"`

	// At is the time of day, or nil for untimed tasks. A task either has
	// a complete time of day or none at all; there is no half-set state.
	At *TimeOfDay `json:"at,omitempty"`
}

// Timed reports whether the task carries a time of day.
func (t Task) Timed() bool {
	return t.At != nil
}

// TimePtr returns a pointer to the provided time of day.
func TimePtr(at TimeOfDay) *TimeOfDay {
	return &at
}
