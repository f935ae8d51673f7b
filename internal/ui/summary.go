package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary   = lipgloss.Color("39")  // Blue
	colorSecondary = lipgloss.Color("245") // Gray
	colorSuccess   = lipgloss.Color("34")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)
)

// Summary is the data rendered after a successful conversion.
type Summary struct {
	RunID      string
	OutputDir  string
	Duration   time.Duration
	Species    int
	Reactions  int
	Enzymes    int
	Processes  int
	Aggregates int
	Renamed    int
	Warnings   []string
}

// RenderSummary renders the conversion summary for the console.
func RenderSummary(s Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Conversion complete"))
	b.WriteByte('\n')

	rows := []struct {
		label string
		value string
	}{
		{"Run", s.RunID},
		{"Output", s.OutputDir},
		{"Duration", s.Duration.Round(time.Millisecond).String()},
		{"Species", fmt.Sprintf("%d", s.Species)},
		{"Reactions", fmt.Sprintf("%d", s.Reactions)},
		{"Enzymes", fmt.Sprintf("%d", s.Enzymes)},
		{"Processes", fmt.Sprintf("%d", s.Processes)},
		{"Aggregates created", fmt.Sprintf("%d", s.Aggregates)},
		{"Species renamed", fmt.Sprintf("%d", s.Renamed)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(r.label+":"), r.value))
	}

	if len(s.Warnings) == 0 {
		b.WriteString(successStyle.Render("  no warnings"))
		b.WriteByte('\n')
	} else {
		b.WriteString(warningStyle.Render(fmt.Sprintf("  %d warning(s):", len(s.Warnings))))
		b.WriteByte('\n')
		for _, w := range s.Warnings {
			b.WriteString("    - " + w + "\n")
		}
	}

	return b.String()
}
