package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var ErrInvalidColor = errors.New("model: invalid note color")

const (
	UntitledNote   = "New Note"
	MaxTitleLength = 50
)

type Color string

const (
	ColorDefault Color = "default"
	ColorRed     Color = "red"
	ColorOrange  Color = "orange"
	ColorYellow  Color = "yellow"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorPurple  Color = "purple"
)

var palette = []Color{ColorDefault, ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple}

func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette)
	return out
}

// IsValid accepts the empty color, which renders as ColorDefault.
func (c Color) IsValid() bool {
	if c == "" {
		return true
	}
	for _, p := range palette {
		if c == p {
			return true
		}
	}
	return false
}

func ParseColor(raw string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return ColorDefault, nil
	}
	if !c.IsValid() {
		return ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, raw)
	}
	return c, nil
}

// NextColor cycles through the palette; unknown colors restart at the first entry.
func NextColor(c Color) Color {
	if c == "" {
		c = ColorDefault
	}
	for i, p := range palette {
		if p == c {
			return palette[(i+1)%len(palette)]
		}
	}
	return palette[0]
}

type Note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	RichText  []byte
	Tags      []string
	Pinned    bool
	// Color is kept as loaded; keys outside the palette render as default.
	Color     Color
}

func NewNote(id string, createdAt time.Time) Note {
	return Note{
		ID:        id,
		Title:     UntitledNote,
		CreatedAt: createdAt,
		Color:     ColorDefault,
	}
}

// SetContent is the only way a note's title changes.
func (n *Note) SetContent(content string) {
	n.Content = content
	n.Title = DeriveTitle(content)
}

func (n Note) IsRich() bool {
	return len(n.RichText) > 0
}

func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func (n Note) Clone() Note {
	out := n
	if n.RichText != nil {
		out.RichText = append([]byte(nil), n.RichText...)
	}
	if n.Tags != nil {
		out.Tags = append([]string(nil), n.Tags...)
	}
	return out
}

func DeriveTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return truncateRunes(trimmed, MaxTitleLength)
	}
	return UntitledNote
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
