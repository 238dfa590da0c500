package model

import "strings"

type FormattingMode int

const (
	ModeNone FormattingMode = iota
	ModeBullet
	ModeTask
)

func (m FormattingMode) Prefix() string {
	switch m {
	case ModeBullet:
		return BulletMarker
	case ModeTask:
		return CheckboxUnchecked
	default:
		return ""
	}
}

func (m FormattingMode) String() string {
	switch m {
	case ModeBullet:
		return "bullet"
	case ModeTask:
		return "task"
	default:
		return "none"
	}
}

func ParseFormattingMode(raw string) (FormattingMode, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none", "off", "":
		return ModeNone, true
	case "bullet", "bullets", "list":
		return ModeBullet, true
	case "task", "tasks", "todo", "checkbox":
		return ModeTask, true
	default:
		return ModeNone, false
	}
}

// FollowUp is a content rewrite the caller must apply after the current edit
// has settled, never inside the same update.
type FollowUp struct {
	Content string
}

// Formatter tracks the sticky list mode of the note being edited.
// The zero value is ready to use and starts in ModeNone.
type Formatter struct {
	mode FormattingMode
}

func (f *Formatter) Mode() FormattingMode {
	return f.mode
}

// Reset must be called whenever a different note is opened.
func (f *Formatter) Reset() {
	f.mode = ModeNone
}

// Toggle switches to mode, or back to ModeNone when mode is already active.
// Entering a mode returns content with the mode's prefix started on a fresh line.
func (f *Formatter) Toggle(mode FormattingMode, content string) string {
	if mode == ModeNone || f.mode == mode {
		f.mode = ModeNone
		return content
	}
	f.mode = mode
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + mode.Prefix()
}

// Observe inspects an edit. A double newline ends the sticky mode; otherwise a
// newly started line gets the active prefix through the returned FollowUp.
func (f *Formatter) Observe(oldContent, newContent string) (FollowUp, bool) {
	if f.mode == ModeNone {
		return FollowUp{}, false
	}
	if strings.HasSuffix(newContent, "\n\n") {
		f.mode = ModeNone
		return FollowUp{}, false
	}
	oldLines := splitLines(oldContent)
	newLines := splitLines(newContent)
	if len(newLines) <= len(oldLines) {
		return FollowUp{}, false
	}
	prefix := f.mode.Prefix()
	last := newLines[len(newLines)-1]
	switch {
	case last == "":
		return FollowUp{Content: newContent + prefix}, true
	case !strings.HasPrefix(last, prefix):
		newLines[len(newLines)-1] = prefix + last
		return FollowUp{Content: joinLines(newLines)}, true
	default:
		return FollowUp{}, false
	}
}
