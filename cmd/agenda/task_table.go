package main

import (
	"sort"
	"strconv"

	"github.com/hollis/agenda/internal/ui"
	"github.com/hollis/agenda/task"
	"github.com/muesli/reflow/truncate"
)

const taskNameMaxWidth = 50

// indexedTask pairs a task with its storage index so the chronological view
// and delete indexes stay reconcilable.
type indexedTask struct {
	Index int `json:"index"`
	task.Task
}

func indexedTasks(tasks []task.Task) []indexedTask {
	entries := make([]indexedTask, len(tasks))
	for i, t := range tasks {
		entries[i] = indexedTask{Index: i, Task: t}
	}
	return entries
}

func sortEntries(entries []indexedTask) {
	sort.SliceStable(entries, func(i, j int) bool {
		return task.Less(entries[i].Task, entries[j].Task)
	})
}

func renderTaskTable(entries []indexedTask, styles ui.Styles) string {
	headers := []string{
		styles.Header.Render("#"),
		styles.Header.Render("DATE"),
		styles.Header.Render("TIME"),
		styles.Header.Render("NAME"),
	}

	builder := ui.NewTableBuilder(headers, len(entries))
	for _, entry := range entries {
		timeCell := styles.Muted.Render(ui.UntimedLabel)
		if entry.At != nil {
			timeCell = ui.FormatClock(entry.At.Hour, entry.At.Minute)
		}

		builder.AddRow([]string{
			strconv.Itoa(entry.Index),
			ui.FormatDate(entry.Date.Year, entry.Date.Month, entry.Date.Day),
			timeCell,
			truncate.StringWithTail(entry.Name, taskNameMaxWidth, "..."),
		})
	}

	return builder.String()
}
