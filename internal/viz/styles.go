package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	Subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	PanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	GraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// Summary renders label/value rows in the standard two-column layout.
func Summary(rows [][2]string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(LabelStyle.Render(row[0]))
		b.WriteString(ValueStyle.Render(row[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// Sparkline renders values as a one-line bar chart, for the local error
// decomposition.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}
	var b strings.Builder
	for _, v := range values {
		idx := int((v - min) / rng * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

// FormatFloat trims a float for table output.
func FormatFloat(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
