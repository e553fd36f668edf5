package main

import (
	"strings"
	"testing"

	"github.com/hollis/agenda/internal/ui"
	"github.com/hollis/agenda/task"
)

func sampleTasks() []task.Task {
	return []task.Task{
		{Name: "B", Date: task.Date{Year: 2024, Month: 1, Day: 2}},
		{Name: "A", Date: task.Date{Year: 2024, Month: 1, Day: 2}, At: &task.TimeOfDay{Hour: 9, Minute: 0}},
		{Name: "C", Date: task.Date{Year: 2024, Month: 1, Day: 1}},
	}
}

func TestSortEntries_KeepsStorageIndexes(t *testing.T) {
	entries := indexedTasks(sampleTasks())
	sortEntries(entries)

	wantNames := []string{"C", "B", "A"}
	wantIndexes := []int{2, 0, 1}
	for i := range wantNames {
		if entries[i].Name != wantNames[i] {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, wantNames[i])
		}
		if entries[i].Index != wantIndexes[i] {
			t.Errorf("entries[%d].Index = %d, want %d", i, entries[i].Index, wantIndexes[i])
		}
	}
}

func TestRenderTaskTable(t *testing.T) {
	entries := indexedTasks(sampleTasks())
	sortEntries(entries)

	got := renderTaskTable(entries, ui.StylesFor("never"))

	want := "" +
		"#  DATE        TIME     NAME\n" +
		"2  2024-01-01  untimed  C\n" +
		"0  2024-01-02  untimed  B\n" +
		"1  2024-01-02  09:00    A\n"
	if got != want {
		t.Fatalf("renderTaskTable() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderTaskTable_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", taskNameMaxWidth+10)
	entries := indexedTasks([]task.Task{
		{Name: long, Date: task.Date{Year: 2024, Month: 1, Day: 1}},
	})

	got := renderTaskTable(entries, ui.StylesFor("never"))

	if strings.Contains(got, long) {
		t.Error("expected long name to be truncated")
	}
	if !strings.Contains(got, "...") {
		t.Error("expected truncation tail")
	}
}
