package task

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that the date exists on the Gregorian calendar.
func (d Date) Validate() error {
	if d.Year < 1 {
		return fmt.Errorf("%w: year %d", ErrInvalidDate, d.Year)
	}

	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 1),
	// so a date is valid exactly when it round-trips unchanged.
	probe := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if probe.Year() != d.Year || probe.Month() != time.Month(d.Month) || probe.Day() != d.Day {
		return fmt.Errorf("%w: %d-%d-%d", ErrInvalidDate, d.Year, d.Month, d.Day)
	}

	return nil
}

// Validate checks that the time is a valid 24-hour clock time.
func (at TimeOfDay) Validate() error {
	if at.Hour < 0 || at.Hour > 23 || at.Minute < 0 || at.Minute > 59 {
		return fmt.Errorf("%w: %d:%d", ErrInvalidTime, at.Hour, at.Minute)
	}
	return nil
}

// ValidateName checks that a task name is non-empty after trimming.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Validate checks the task's date and time. Empty names pass: lines loaded
// from the backing file may carry them, and only user-supplied tasks are
// held to ValidateName.
func (t Task) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if t.At != nil {
		return t.At.Validate()
	}
	return nil
}

// New builds a validated task from user input. The name is trimmed and must
// be non-empty; at may be nil for an untimed task.
func New(name string, date Date, at *TimeOfDay) (Task, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return Task{}, err
	}

	t := Task{Name: name, Date: date, At: at}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}

	return t, nil
}
