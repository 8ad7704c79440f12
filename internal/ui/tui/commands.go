package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/axzolotle/learning-intern/internal/infra/fsdataset"
	"github.com/axzolotle/learning-intern/internal/infra/reportstore"
	"github.com/axzolotle/learning-intern/internal/infra/workspacefinder"
	"github.com/axzolotle/learning-intern/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		uc := usecase.NewInitWorkspace(deps.WorkspaceInitializer)
		err := uc.Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadDatasets(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return datasetsLoadedMsg{root: root, err: err}
		}

		loader := fsdataset.NewLoader(
			fsdataset.WithDatasetsDir(cfg.Paths.DatasetsDir),
		)

		refs, err := loader.ListDatasets(root)
		return datasetsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func listenClassify(ch <-chan classifyDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return classifyDoneMsg{err: errors.New("classify channel closed")}
		}
		return msg
	}
}

// startClassifyAsync classifies the dataset at datasetPath in the background
// and saves a report like `agegroup classify` does.
func startClassifyAsync(
	workspaceRoot, datasetPath string,
	log *slog.Logger,
	debug bool,
) (chan classifyDoneMsg, tea.Cmd) {
	ch := make(chan classifyDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("tui.classify.start",
			"workspace", workspaceRoot,
			"dataset_path", datasetPath,
			"debug", debug,
		)

		cfg, err := workspacefinder.LoadConfig(workspaceRoot)
		if err != nil {
			log.Error("tui.classify.load_config.failed", "err", err)
			ch <- classifyDoneMsg{err: err}
			return
		}

		loader := fsdataset.NewLoader(
			fsdataset.WithDatasetsDir(cfg.Paths.DatasetsDir),
		)
		store := reportstore.NewJSONStore(workspaceRoot, cfg, reportstore.WithIndex(true))

		uc := usecase.NewClassifyDataset(loader, store,
			usecase.WithWorkers(cfg.Defaults.Workers),
			usecase.WithLogger(log),
		)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		report, id, execErr := uc.Execute(ctx, datasetPath)
		if execErr != nil {
			log.Error("tui.classify.failed", "err", execErr, "saved_id", id)
		} else {
			log.Info("tui.classify.ok", "saved_id", id, "rows", len(report.Rows))
		}

		if debug {
			for _, c := range report.Summary.Counts {
				log.Debug("tui.classify.group", "group", c.Group.String(), "count", c.Count)
			}
		}

		ch <- classifyDoneMsg{report: report, id: id, err: execErr}
	}()

	return ch, listenClassify(ch)
}
