package tui

import "github.com/axzolotle/learning-intern/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type datasetsLoadedMsg struct {
	root string
	refs []domain.DatasetRef
	err  error
}

type classifyDoneMsg struct {
	report domain.Report
	id     string
	err    error
}
