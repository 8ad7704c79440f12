package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/axzolotle/learning-intern/internal/domain"
	"github.com/axzolotle/learning-intern/internal/ports"
)

// Finder locates the nearest directory holding an agegroup.yaml file.
type Finder struct{}

func NewFinder() *Finder { return &Finder{} }

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot walks from startDir (or the directory of a file such as a dataset
// path) towards the filesystem root. A directory named agegroup.yaml does
// not mark a workspace.
func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}

	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, err := os.Stat(start); err == nil && !info.IsDir() {
		start = filepath.Dir(start)
	}

	for dir := start; ; {
		if isWorkspace(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", &domain.OpError{
		Op:   "workspacefinder.findroot",
		Kind: domain.KindNotFound,
		Path: start,
		Err:  domain.ErrNotFound,
	}
}

func isWorkspace(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ConfigFile))
	return err == nil && info.Mode().IsRegular()
}
