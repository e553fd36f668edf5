package task

import (
	"strconv"
	"strings"
)

// Line renders the task in its canonical stored form. Numeric fields use
// plain base-10 text with no zero padding; padding is a display concern,
// not a storage one. Serializing and re-parsing a valid task yields an
// equal task.
func (t Task) Line() string {
	fields := []string{
		t.Name,
		strconv.Itoa(t.Date.Year),
		strconv.Itoa(t.Date.Month),
		strconv.Itoa(t.Date.Day),
	}
	if t.At != nil {
		fields = append(fields, strconv.Itoa(t.At.Hour), strconv.Itoa(t.At.Minute))
	}
	return strings.Join(fields, "|")
}
