package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/axzolotle/learning-intern/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

const maxNameWidth = 24

func renderReportTable(t Theme, rows []domain.ClassifiedRecord) string {
	if len(rows) == 0 {
		return "(no records)\n"
	}

	nameWidth := len("NAME")
	for _, r := range rows {
		if n := utf8.RuneCountInString(clampString(r.Name, maxNameWidth)); n > nameWidth {
			nameWidth = n
		}
	}

	var b strings.Builder
	b.WriteString(t.Header.Render(fmt.Sprintf("%-*s  %6s  %-11s", nameWidth, "NAME", "AGE", "AGE GROUP")))
	b.WriteString("\n")
	for _, r := range rows {
		name := clampString(r.Name, maxNameWidth)
		pad := nameWidth - utf8.RuneCountInString(name)
		b.WriteString(name)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(fmt.Sprintf("  %6g  ", r.Age))
		b.WriteString(t.Group(r.Group).Render(r.Group.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func renderSummary(t Theme, s domain.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total: %d\n", s.Total))
	for _, c := range s.Counts {
		b.WriteString("  ")
		b.WriteString(t.Group(c.Group).Render(fmt.Sprintf("%-12s", c.Group)))
		b.WriteString(fmt.Sprintf(" %d\n", c.Count))
	}
	return b.String()
}
