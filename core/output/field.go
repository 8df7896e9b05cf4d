package output

import (
	"fmt"
	"os"
)

// Field is a text value with a selection, like an input box with a cursor.
// Offsets count runes.
type Field struct {
	Value          string
	SelectionStart int
	SelectionEnd   int
}

// Insert replaces the selected text with text and moves the cursor to just
// after it. A selection outside the value appends instead.
func (f *Field) Insert(text string) {
	value := []rune(f.Value)
	start, end := f.SelectionStart, f.SelectionEnd

	if start < 0 || start > len(value) {
		f.Value += text
		f.SelectionStart = len(value) + len([]rune(text))
		f.SelectionEnd = f.SelectionStart
		return
	}
	if end < start {
		end = start
	}
	if end > len(value) {
		end = len(value)
	}

	f.Value = string(value[:start]) + text + string(value[end:])
	f.SelectionStart = start + len([]rune(text))
	f.SelectionEnd = f.SelectionStart
}

// InsertIntoFile splices text into the file at path, replacing runes
// [start, end). It returns the cursor offset after the inserted text.
func InsertIntoFile(path string, start, end int, text string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	field := Field{Value: string(data), SelectionStart: start, SelectionEnd: end}
	field.Insert(text)

	if err := os.WriteFile(path, []byte(field.Value), 0o644); err != nil {
		return 0, fmt.Errorf("writing file %s: %w", path, err)
	}
	return field.SelectionStart, nil
}
