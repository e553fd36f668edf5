package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hollis/agenda/internal/config"
	"github.com/hollis/agenda/task"
)

// openStore loads config from the working directory and opens the task
// store, honoring the --file override.
func openStore() (*task.Store, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.Tasks.File
	if taskFileFlag != "" {
		path = taskFileFlag
	}

	store, err := task.Open(path, task.OpenOptions{})
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// parseDateFlag parses a YYYY-MM-DD flag value. Components are plain
// integers, so 2024-3-5 is as valid as 2024-03-05.
func parseDateFlag(value string) (task.Date, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return task.Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return task.Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
		}
		nums[i] = n
	}

	date := task.Date{Year: nums[0], Month: nums[1], Day: nums[2]}
	if err := date.Validate(); err != nil {
		return task.Date{}, err
	}
	return date, nil
}

// parseTimeFlag parses an HH:MM flag value. Empty means untimed.
func parseTimeFlag(value string) (*task.TimeOfDay, error) {
	if value == "" {
		return nil, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}

	at := task.TimeOfDay{Hour: hour, Minute: minute}
	if err := at.Validate(); err != nil {
		return nil, err
	}
	return &at, nil
}
