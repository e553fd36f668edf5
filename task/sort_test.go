package task

import "testing"

func TestSorted(t *testing.T) {
	input := []Task{
		{Name: "B", Date: Date{Year: 2024, Month: 1, Day: 2}},
		{Name: "A", Date: Date{Year: 2024, Month: 1, Day: 2}, At: &TimeOfDay{Hour: 9, Minute: 0}},
		{Name: "C", Date: Date{Year: 2024, Month: 1, Day: 1}},
	}

	got := Sorted(input)

	want := []string{"C", "B", "A"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Sorted()[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestSorted_UntimedBeforeTimedOnSameDate(t *testing.T) {
	input := []Task{
		{Name: "timed", Date: Date{Year: 2024, Month: 6, Day: 1}, At: &TimeOfDay{Hour: 0, Minute: 0}},
		{Name: "untimed", Date: Date{Year: 2024, Month: 6, Day: 1}},
	}

	got := Sorted(input)
	if got[0].Name != "untimed" || got[1].Name != "timed" {
		t.Errorf("got order [%s %s], want [untimed timed]", got[0].Name, got[1].Name)
	}
}

func TestSorted_TimeOrderWithinDate(t *testing.T) {
	input := []Task{
		{Name: "late", Date: Date{Year: 2024, Month: 6, Day: 1}, At: &TimeOfDay{Hour: 14, Minute: 0}},
		{Name: "early", Date: Date{Year: 2024, Month: 6, Day: 1}, At: &TimeOfDay{Hour: 9, Minute: 30}},
		{Name: "mid", Date: Date{Year: 2024, Month: 6, Day: 1}, At: &TimeOfDay{Hour: 9, Minute: 45}},
	}

	got := Sorted(input)
	want := []string{"early", "mid", "late"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Sorted()[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestSorted_Stable(t *testing.T) {
	input := []Task{
		{Name: "first", Date: Date{Year: 2024, Month: 6, Day: 1}},
		{Name: "second", Date: Date{Year: 2024, Month: 6, Day: 1}},
		{Name: "third", Date: Date{Year: 2024, Month: 6, Day: 1}},
	}

	got := Sorted(input)
	want := []string{"first", "second", "third"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("equal keys reordered: Sorted()[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestSorted_DoesNotMutateInput(t *testing.T) {
	input := []Task{
		{Name: "B", Date: Date{Year: 2025, Month: 1, Day: 1}},
		{Name: "A", Date: Date{Year: 2024, Month: 1, Day: 1}},
	}

	_ = Sorted(input)

	if input[0].Name != "B" || input[1].Name != "A" {
		t.Errorf("input mutated: got [%s %s], want [B A]", input[0].Name, input[1].Name)
	}
}

func TestLess_YearMonthDayPrecedence(t *testing.T) {
	tests := []struct {
		name string
		a, b Task
		want bool
	}{
		{
			name: "earlier year",
			a:    Task{Date: Date{Year: 2023, Month: 12, Day: 31}},
			b:    Task{Date: Date{Year: 2024, Month: 1, Day: 1}},
			want: true,
		},
		{
			name: "earlier month",
			a:    Task{Date: Date{Year: 2024, Month: 1, Day: 31}},
			b:    Task{Date: Date{Year: 2024, Month: 2, Day: 1}},
			want: true,
		},
		{
			name: "earlier day",
			a:    Task{Date: Date{Year: 2024, Month: 2, Day: 1}},
			b:    Task{Date: Date{Year: 2024, Month: 2, Day: 2}},
			want: true,
		},
		{
			name: "equal untimed",
			a:    Task{Date: Date{Year: 2024, Month: 2, Day: 1}},
			b:    Task{Date: Date{Year: 2024, Month: 2, Day: 1}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Less(tt.a, tt.b); got != tt.want {
				t.Errorf("Less() = %v, want %v", got, tt.want)
			}
		})
	}
}
