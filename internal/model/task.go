package model

import "strings"

const (
	CheckboxUnchecked = "☐ "
	CheckboxChecked   = "☑ "
	BulletMarker      = "• "
)

// TaskItem is a checkbox line found by ExtractTasks.
//
// IDs and line indexes are positional: they are only valid until the next
// content change of any note and must be recomputed rather than cached.
type TaskItem struct {
	ID        int
	Text      string
	Completed bool
	NoteID    string
	LineIndex int
}

func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// ParseTaskLine reports whether line starts with a checkbox marker.
func ParseTaskLine(line string) (text string, completed bool, ok bool) {
	switch {
	case strings.HasPrefix(line, CheckboxUnchecked):
		return strings.TrimPrefix(line, CheckboxUnchecked), false, true
	case strings.HasPrefix(line, CheckboxChecked):
		return strings.TrimPrefix(line, CheckboxChecked), true, true
	default:
		return "", false, false
	}
}

// ExtractTasks walks notes in order, then lines in order.
func ExtractTasks(notes []Note) []TaskItem {
	out := make([]TaskItem, 0)
	nextID := 0
	for _, note := range notes {
		for i, line := range splitLines(note.Content) {
			text, completed, ok := ParseTaskLine(line)
			if !ok {
				continue
			}
			out = append(out, TaskItem{
				ID:        nextID,
				Text:      text,
				Completed: completed,
				NoteID:    note.ID,
				LineIndex: i,
			})
			nextID++
		}
	}
	return out
}

// ToggleMarker flips a leading checkbox marker. Lines without one are returned as is.
func ToggleMarker(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, CheckboxUnchecked):
		return CheckboxChecked + strings.TrimPrefix(line, CheckboxUnchecked), true
	case strings.HasPrefix(line, CheckboxChecked):
		return CheckboxUnchecked + strings.TrimPrefix(line, CheckboxChecked), true
	default:
		return line, false
	}
}

func ToggleTaskLine(content string, lineIndex int) (string, bool) {
	lines := splitLines(content)
	if lineIndex < 0 || lineIndex >= len(lines) {
		return content, false
	}
	next, ok := ToggleMarker(lines[lineIndex])
	if !ok {
		return content, false
	}
	lines[lineIndex] = next
	return joinLines(lines), true
}

// ToggleTask recomputes the task list and flips the marker addressed by taskID
// in place. Out-of-range ids and stale line indexes are silent no-ops.
func ToggleTask(notes []Note, taskID int) (TaskItem, bool) {
	tasks := ExtractTasks(notes)
	if taskID < 0 || taskID >= len(tasks) {
		return TaskItem{}, false
	}
	task := tasks[taskID]
	for i := range notes {
		if notes[i].ID != task.NoteID {
			continue
		}
		next, ok := ToggleTaskLine(notes[i].Content, task.LineIndex)
		if !ok {
			return TaskItem{}, false
		}
		notes[i].SetContent(next)
		task.Completed = !task.Completed
		return task, true
	}
	return TaskItem{}, false
}
