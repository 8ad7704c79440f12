package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/axzolotle/learning-intern/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenReport
)

func (s screen) String() string {
	switch s {
	case screenHome:
		return "home"
	case screenReport:
		return "report"
	default:
		return "unknown"
	}
}

type itemKind int

const (
	itemDataset itemKind = iota
	itemInit
	itemRefresh
	itemQuit
)

type menuItem struct {
	kind  itemKind
	title string
	desc  string
	path  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	cwd            string
	workspaceFound bool
	workspaceRoot  string

	running bool
	toast   string

	report  domain.Report
	savedID string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Datasets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		menu:  l,
	}
	m.menu.SetItems(m.menuItems(nil))
	return m
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) menuItems(refs []domain.DatasetRef) []list.Item {
	items := make([]list.Item, 0, len(refs)+3)
	for _, r := range refs {
		items = append(items, menuItem{kind: itemDataset, title: r.Name, desc: r.Path, path: r.Path})
	}
	if !m.workspaceFound {
		items = append(items, menuItem{kind: itemInit, title: "Init workspace", desc: "Create agegroup.yaml and a sample dataset here"})
	}
	items = append(items,
		menuItem{kind: itemRefresh, title: "Refresh", desc: "Reload workspace and datasets"},
		menuItem{kind: itemQuit, title: "Quit", desc: "Exit agegroup"},
	)
	return items
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		m.menu.SetItems(m.menuItems(nil))
		if !msg.found {
			return m, nil
		}
		return m, cmdLoadDatasets(msg.root)

	case datasetsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.menu.SetItems(m.menuItems(msg.refs))
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created"
		return m, cmdRefreshWorkspace(m.deps)

	case classifyDoneMsg:
		m.running = false
		if msg.err != nil && len(msg.report.Rows) == 0 {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		if msg.err != nil {
			m.toast = "Report not saved: " + userMessage(msg.err)
		} else {
			m.toast = ""
		}
		m.report = msg.report
		m.savedID = msg.id
		m.scr = screenReport
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}

		case "enter":
			if m.scr == screenHome {
				return m.activate()
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) activate() (tea.Model, tea.Cmd) {
	it, ok := m.menu.SelectedItem().(menuItem)
	if !ok || m.running {
		return m, nil
	}

	switch it.kind {
	case itemQuit:
		return m, tea.Quit

	case itemRefresh:
		m.toast = ""
		return m, cmdRefreshWorkspace(m.deps)

	case itemInit:
		if m.cwd == "" {
			m.toast = "Working directory unknown"
			return m, nil
		}
		return m, cmdInitWorkspaceHere(m.deps, m.cwd)

	case itemDataset:
		m.running = true
		m.toast = "Classifying " + it.title + "…"
		_, cmd := startClassifyAsync(m.workspaceRoot, it.path, m.deps.Logger, m.deps.Debug)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("agegroup") + "\n" +
		m.theme.Subtitle.Render("Teen • Young Adult • Adult • Senior") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nSelect \"Init workspace\" to create one here.",
		)
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter classify • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + toast + "\n" + help)

	case screenReport:
		title := m.report.DatasetName
		if m.savedID != "" {
			title += "  " + m.theme.Help.Render("saved "+m.savedID)
		}
		card := m.theme.Card.Render(
			m.theme.Title.Render(title) + "\n\n" +
				renderReportTable(m.theme, m.report.Rows) + "\n" +
				renderSummary(m.theme, m.report.Summary) + "\n" +
				m.theme.Help.Render("esc/b back • q home"),
		)
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
