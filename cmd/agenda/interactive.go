package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hollis/agenda/internal/ui"
	"github.com/hollis/agenda/task"
	"github.com/spf13/cobra"
)

// agenda interactive
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Short:   "Run the interactive menu",
	Aliases: []string{"menu"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// runRoot starts the interactive menu when attached to a terminal and
// otherwise prints help, so piped invocations don't hang on stdin.
func runRoot(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractive() {
		return cmd.Help()
	}
	return runMenu()
}

func runMenu() error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	styles := ui.StylesFor(cfg.UI.Color)

	fmt.Printf("Loaded %d tasks from %s.\n", store.Len(), store.Path())

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println()
		fmt.Println("1: View tasks")
		fmt.Println("2: Add a task")
		fmt.Println("3: Delete a task")
		fmt.Println("4: Exit")

		choice, err := promptString(reader, "Choice (1-4): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			printSorted(store, styles)
		case "2":
			if err := promptAdd(reader, store); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				fmt.Printf("Could not add task: %v\n", err)
			}
		case "3":
			if err := promptDelete(reader, store, styles); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				fmt.Printf("Could not delete task: %v\n", err)
			}
		case "4":
			return nil
		default:
			fmt.Println("Invalid choice. Enter a number between 1 and 4.")
		}
	}
}

func runInteractiveAdd() error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	return promptAdd(bufio.NewReader(os.Stdin), store)
}

func printSorted(store *task.Store, styles ui.Styles) {
	entries := indexedTasks(store.Tasks())
	if len(entries) == 0 {
		fmt.Println("No tasks to display.")
		return
	}

	sortEntries(entries)
	fmt.Print(renderTaskTable(entries, styles))
}

// promptAdd collects task fields one at a time, re-prompting until the date
// (and time, for timed tasks) is valid.
func promptAdd(reader *bufio.Reader, store *task.Store) error {
	name, err := promptString(reader, "Task name: ")
	if err != nil {
		return err
	}
	if err := task.ValidateName(name); err != nil {
		return err
	}

	var date task.Date
	for {
		year, err := promptInt(reader, "Year (e.g. 2024): ")
		if err != nil {
			return err
		}
		month, err := promptInt(reader, "Month (1-12): ")
		if err != nil {
			return err
		}
		day, err := promptInt(reader, "Day (1-31): ")
		if err != nil {
			return err
		}

		date = task.Date{Year: year, Month: month, Day: day}
		if err := date.Validate(); err != nil {
			fmt.Printf("%v. Try again.\n", err)
			continue
		}
		break
	}

	var at *task.TimeOfDay
	timed, err := promptString(reader, "Timed task? (y/n): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(timed, "y") {
		for {
			hour, err := promptInt(reader, "Hour (0-23): ")
			if err != nil {
				return err
			}
			minute, err := promptInt(reader, "Minute (0-59): ")
			if err != nil {
				return err
			}

			candidate := task.TimeOfDay{Hour: hour, Minute: minute}
			if err := candidate.Validate(); err != nil {
				fmt.Printf("%v. Try again.\n", err)
				continue
			}
			at = &candidate
			break
		}
	}

	added, err := task.New(name, date, at)
	if err != nil {
		return err
	}
	if err := store.Add(added); err != nil {
		return err
	}

	fmt.Printf("Added task %d: %s\n", store.Len()-1, added.Name)
	return nil
}

// promptDelete shows the collection in storage order (delete indexes refer
// to that order) and re-prompts until the index is in range.
func promptDelete(reader *bufio.Reader, store *task.Store, styles ui.Styles) error {
	if store.Len() == 0 {
		fmt.Println("No tasks to delete.")
		return nil
	}

	fmt.Print(renderTaskTable(indexedTasks(store.Tasks()), styles))

	for {
		index, err := promptInt(reader, fmt.Sprintf("Index to delete (0-%d): ", store.Len()-1))
		if err != nil {
			return err
		}

		removed, err := store.DeleteAt(index)
		if errors.Is(err, task.ErrIndexOutOfRange) {
			fmt.Printf("%v. Try again.\n", err)
			continue
		}
		if err != nil {
			return err
		}

		fmt.Printf("Deleted task: %s\n", removed.Name)
		return nil
	}
}

func promptString(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptInt(reader *bufio.Reader, label string) (int, error) {
	for {
		value, err := promptString(reader, label)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Println("Enter a whole number.")
			continue
		}
		return n, nil
	}
}
