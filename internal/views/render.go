package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	LeftPane     string
	RightPane    string
	LeftWidth    int
	RightWidth   int
	StatusLine   string
	IsError      bool
	Footer       string
	Notification string
}

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activePanelStyle = panelStyle.BorderForeground(lipgloss.Color("12"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tabStyle         = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle   = tabStyle.Bold(true).Underline(true)
	doneStyle        = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

const (
	defaultLeftWidth  = 36
	defaultRightWidth = 60
)

func RenderApp(data AppData) string {
	leftWidth, rightWidth := data.LeftWidth, data.RightWidth
	if leftWidth <= 0 {
		leftWidth = defaultLeftWidth
	}
	if rightWidth <= 0 {
		rightWidth = defaultRightWidth
	}
	left := panelStyle.Width(leftWidth).Render(data.LeftPane)
	right := activePanelStyle.Width(rightWidth).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(data.StatusLine)
	if data.IsError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

var colorSwatches = map[string]lipgloss.Color{
	"red":    lipgloss.Color("9"),
	"orange": lipgloss.Color("208"),
	"yellow": lipgloss.Color("11"),
	"green":  lipgloss.Color("10"),
	"blue":   lipgloss.Color("12"),
	"purple": lipgloss.Color("13"),
}

// Swatch renders the colored dot shown next to a note; default notes get none.
func Swatch(color string) string {
	c, ok := colorSwatches[color]
	if !ok {
		return ""
	}
	return lipgloss.NewStyle().Foreground(c).Render("●") + " "
}
