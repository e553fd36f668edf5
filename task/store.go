package task

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Store owns the in-memory task collection and its backing file. Tasks are
// kept in storage order; every mutation rewrites the whole file. The Store
// never reorders the persisted collection on its own: sorting is a read-only
// view, not something written back.
type Store struct {
	path  string
	tasks []Task
	warn  io.Writer
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// WarnWriter receives skipped-line warnings during load.
	// If nil, os.Stderr is used.
	WarnWriter io.Writer
}

// Open loads the task list at path. A missing file is not an error; it
// yields an empty store. Malformed lines are reported to the warn writer
// with their 1-based line number and raw content, then skipped. Blank lines
// are skipped silently.
func Open(path string, opts OpenOptions) (*Store, error) {
	if opts.WarnWriter == nil {
		opts.WarnWriter = os.Stderr
	}

	s := &Store{path: path, warn: opts.WarnWriter}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		parsed, ok, err := ParseLine(line)
		if err != nil {
			fmt.Fprintf(s.warn, "warning: skipping line %d: %q: %v\n", lineNum, strings.TrimSpace(line), err)
			continue
		}
		if !ok {
			continue
		}

		s.tasks = append(s.tasks, parsed)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read task file: %w", err)
	}
	return nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns the collection in storage order. The caller owns the slice.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Sorted returns a chronological view of the collection.
func (s *Store) Sorted() []Task {
	return Sorted(s.tasks)
}

// Add validates the task, appends it, and persists the collection. The name
// is trimmed and must be non-empty. If the save fails the task stays in the
// in-memory collection and the error is returned; durability is lost until
// the next successful save.
func (s *Store) Add(t Task) error {
	t.Name = strings.TrimSpace(t.Name)
	if err := ValidateName(t.Name); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}

	s.tasks = append(s.tasks, t)
	if err := s.Save(); err != nil {
		return fmt.Errorf("save task file: %w", err)
	}
	return nil
}

// DeleteAt removes the task at the given 0-based storage index and persists
// the collection. An out-of-range index is rejected and leaves the
// collection unchanged.
func (s *Store) DeleteAt(index int) (Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return Task{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.tasks))
	}

	removed := s.tasks[index]
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)

	if err := s.Save(); err != nil {
		return removed, fmt.Errorf("save task file: %w", err)
	}
	return removed, nil
}

// Save writes every task to the backing file in storage order. The write
// goes to a temp file that is renamed into place, so readers never observe
// a partially written file.
func (s *Store) Save() error {
	tmpPath := s.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	for _, t := range s.tasks {
		if _, err := fmt.Fprintln(f, t.Line()); err != nil {
			f.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("write task: %w", err)
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
