package task

import (
	"fmt"
	"strconv"
	"strings"
)

var numericFieldNames = [...]string{"year", "month", "day", "hour", "minute"}

// ParseLine parses one line of the backing file.
//
// Lines split on '|' into 4 fields (name|year|month|day) for untimed tasks
// or 6 fields (name|year|month|day|hour|minute) for timed ones. Whitespace
// around each field is tolerated and the name is trimmed. Blank lines yield
// ok=false with no error. An empty name is accepted here; only user-supplied
// tasks are required to have one.
func ParseLine(line string) (Task, bool, error) {
	if strings.TrimSpace(line) == "" {
		return Task{}, false, nil
	}

	fields := strings.Split(line, "|")
	if len(fields) != 4 && len(fields) != 6 {
		return Task{}, false, fmt.Errorf("%w, got %d", ErrFieldCount, len(fields))
	}

	nums := make([]int, len(fields)-1)
	for i, field := range fields[1:] {
		field = strings.TrimSpace(field)
		n, err := strconv.Atoi(field)
		if err != nil {
			return Task{}, false, fmt.Errorf("%w: %s %q", ErrNotAnInteger, numericFieldNames[i], field)
		}
		nums[i] = n
	}

	parsed := Task{
		Name: strings.TrimSpace(fields[0]),
		Date: Date{Year: nums[0], Month: nums[1], Day: nums[2]},
	}
	if len(fields) == 6 {
		parsed.At = &TimeOfDay{Hour: nums[3], Minute: nums[4]}
	}

	if err := parsed.Validate(); err != nil {
		return Task{}, false, err
	}

	return parsed, true, nil
}
