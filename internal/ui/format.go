package ui

import "fmt"

// UntimedLabel marks tasks with no time of day in list output.
const UntimedLabel = "untimed"

// FormatDate renders a date as zero-padded YYYY-MM-DD for display.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// FormatClock renders a time of day as zero-padded HH:MM for display.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
