package main

import (
	"fmt"
	"strconv"

	"github.com/hollis/agenda/internal/ui"
	"github.com/hollis/agenda/task"
	"github.com/spf13/cobra"
)

var taskFileFlag string

// agenda add
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task",
	Long: `Add a task.

With --name and --date the task is added directly; without them, agenda
prompts for each field when running interactively.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addName string
	addDate string
	addTime string
)

// agenda delete
var deleteCmd = &cobra.Command{
	Use:     "delete <index>",
	Short:   "Delete the task at a storage index",
	Long:    "Delete the task at a storage index. Indexes are the ones shown in the # column of agenda list.",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

// agenda list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in chronological order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listJSON   bool
	listStored bool
)

func init() {
	rootCmd.AddCommand(addCmd, deleteCmd, listCmd)
	rootCmd.PersistentFlags().StringVarP(&taskFileFlag, "file", "f", "", "Task file (overrides config)")

	// add flags
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Task name")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Date as YYYY-MM-DD")
	addCmd.Flags().StringVarP(&addTime, "time", "t", "", "Time of day as HH:MM (omit for an untimed task)")
	addDateTimeFlagAliases(addCmd)

	// list flags
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listStored, "stored", false, "List in storage order instead of chronological order")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addName == "" && addDate == "" && ui.IsInteractive() {
		return runInteractiveAdd()
	}

	if addName == "" {
		return fmt.Errorf("--name is required")
	}
	if addDate == "" {
		return fmt.Errorf("--date is required")
	}

	date, err := parseDateFlag(addDate)
	if err != nil {
		return err
	}
	at, err := parseTimeFlag(addTime)
	if err != nil {
		return err
	}

	added, err := task.New(addName, date, at)
	if err != nil {
		return err
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Add(added); err != nil {
		return err
	}

	fmt.Printf("Added task %d: %s\n", store.Len()-1, added.Name)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: expected a number", args[0])
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	removed, err := store.DeleteAt(index)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted task: %s\n", removed.Name)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	entries := indexedTasks(store.Tasks())
	if !listStored {
		sortEntries(entries)
	}

	if listJSON {
		return encodeJSONToStdout(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	fmt.Print(renderTaskTable(entries, ui.StylesFor(cfg.UI.Color)))
	return nil
}
