package tui

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/axzolotle/learning-intern/internal/domain"
)

const panicToast = "Unexpected error (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
// After a recovered panic the user is back on the dataset menu with no
// half-rendered report.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.update", r, fmt.Sprintf("%T", msg))
			s.m = s.m.recovered()
			tm, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	if mm, ok := inner.(model); ok {
		s.m = mm
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r, s.m.scr.String())
			out = panicToast
		}
	}()
	return s.m.View()
}

func (s safeModel) logPanic(where string, r any, detail string) {
	s.log.Error("panic.recovered",
		"where", where,
		"detail", detail,
		"dataset", s.m.report.DatasetName,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

// recovered drops the report screen state and any in-flight classification.
func (m model) recovered() model {
	m.scr = screenHome
	m.running = false
	m.report = domain.Report{}
	m.savedID = ""
	m.toast = panicToast
	return m
}

var _ tea.Model = safeModel{}
