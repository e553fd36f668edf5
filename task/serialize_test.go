package task

import "testing"

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "untimed",
			task: Task{Name: "Dentist", Date: Date{Year: 2024, Month: 3, Day: 5}},
			want: "Dentist|2024|3|5",
		},
		{
			name: "timed",
			task: Task{Name: "Standup", Date: Date{Year: 2024, Month: 3, Day: 5}, At: &TimeOfDay{Hour: 9, Minute: 0}},
			want: "Standup|2024|3|5|9|0",
		},
		{
			name: "no zero padding",
			task: Task{Name: "Early", Date: Date{Year: 2024, Month: 1, Day: 2}, At: &TimeOfDay{Hour: 5, Minute: 7}},
			want: "Early|2024|1|2|5|7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Line(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLine_RoundTrip(t *testing.T) {
	tasks := []Task{
		{Name: "Dentist", Date: Date{Year: 2024, Month: 3, Day: 5}},
		{Name: "Standup", Date: Date{Year: 2024, Month: 3, Day: 5}, At: &TimeOfDay{Hour: 9, Minute: 0}},
		{Name: "New year", Date: Date{Year: 2025, Month: 1, Day: 1}, At: &TimeOfDay{Hour: 0, Minute: 0}},
		{Name: "Late", Date: Date{Year: 2024, Month: 12, Day: 31}, At: &TimeOfDay{Hour: 23, Minute: 59}},
	}

	for _, original := range tasks {
		t.Run(original.Name, func(t *testing.T) {
			parsed, ok, err := ParseLine(original.Line())
			if err != nil {
				t.Fatalf("re-parse failed: %v", err)
			}
			if !ok {
				t.Fatal("re-parse produced no task")
			}

			if parsed.Name != original.Name || parsed.Date != original.Date {
				t.Errorf("round trip changed task: got %+v, want %+v", parsed, original)
			}
			if (parsed.At == nil) != (original.At == nil) {
				t.Fatalf("round trip changed timedness: got %+v, want %+v", parsed.At, original.At)
			}
			if parsed.At != nil && *parsed.At != *original.At {
				t.Errorf("round trip changed time: got %+v, want %+v", *parsed.At, *original.At)
			}
		})
	}
}
