package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/axzolotle/learning-intern/internal/domain"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style
	Header   lipgloss.Style

	// Groups is indexed in domain.Groups() order.
	Groups []lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Groups: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
		},
	}
}

// Group returns the style for g, or a plain style for unknown labels.
func (t Theme) Group(g domain.AgeGroup) lipgloss.Style {
	for i, x := range domain.Groups() {
		if x == g && i < len(t.Groups) {
			return t.Groups[i]
		}
	}
	return lipgloss.NewStyle()
}
