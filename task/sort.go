package task

import "sort"

// Sorted returns the tasks in chronological order without mutating the
// input. The key is (year, month, day, has-time, hour, minute): untimed
// tasks sort before timed tasks on the same date, and the sort is stable,
// so tasks with equal keys keep their stored relative order.
func Sorted(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i], out[j])
	})
	return out
}

// Less reports whether a orders before b chronologically.
func Less(a, b Task) bool {
	if a.Date.Year != b.Date.Year {
		return a.Date.Year < b.Date.Year
	}
	if a.Date.Month != b.Date.Month {
		return a.Date.Month < b.Date.Month
	}
	if a.Date.Day != b.Date.Day {
		return a.Date.Day < b.Date.Day
	}

	// Untimed before timed on a shared date. The tagged optional leaves no
	// half-set time state to guard against.
	switch {
	case a.At == nil && b.At == nil:
		return false
	case a.At == nil:
		return true
	case b.At == nil:
		return false
	}

	if a.At.Hour != b.At.Hour {
		return a.At.Hour < b.At.Hour
	}
	return a.At.Minute < b.At.Minute
}
