package task

import "errors"

var (
	// ErrEmptyName is returned when a task name is empty after trimming.
	ErrEmptyName = errors.New("task name cannot be empty")

	// ErrInvalidDate is returned when a date does not exist on the calendar.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidTime is returned when a time of day is out of range.
	ErrInvalidTime = errors.New("invalid time of day")

	// ErrFieldCount is returned when a line does not split into 4 or 6 fields.
	ErrFieldCount = errors.New("expected 4 or 6 '|'-separated fields")

	// ErrNotAnInteger is returned when a numeric field does not parse.
	ErrNotAnInteger = errors.New("field must be an integer")

	// ErrIndexOutOfRange is returned when a delete index is outside the collection.
	ErrIndexOutOfRange = errors.New("task index out of range")
)
