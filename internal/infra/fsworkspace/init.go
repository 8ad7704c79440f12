package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/axzolotle/learning-intern/internal/domain"
	"github.com/axzolotle/learning-intern/internal/ports"
)

const (
	stateDir        = ".agegroup"
	gitignoreHeader = "# agegroup"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init lays out a workspace under spec.Root using the default paths of
// agegroup.yaml: the datasets and reports directories, the log directory and
// the embedded templates (config plus sample datasets). Template files that
// already exist are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	paths := domain.DefaultConfig().Paths

	for _, d := range []string{paths.DatasetsDir, paths.ReportsDir, filepath.Join(stateDir, "logs")} {
		dir := filepath.Join(root, d)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindExecution, Path: dir, Err: err}
		}
	}

	ignored := []string{paths.ReportsDir + "/", stateDir + "/"}
	if err := ensureGitignore(root, ignored...); err != nil {
		return &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	return installTemplates(root, force)
}

// installTemplates copies every file under templates/ to the same relative
// path below root.
func installTemplates(root string, force bool) error {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return &domain.OpError{Op: "fsworkspace.templates", Kind: domain.KindExecution, Err: err}
	}

	return fs.WalkDir(sub, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		dst := filepath.Join(root, filepath.FromSlash(p))
		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(sub, p)
		if err == nil {
			err = os.MkdirAll(filepath.Join(root, filepath.FromSlash(path.Dir(p))), 0o755)
		}
		if err == nil {
			err = os.WriteFile(dst, b, 0o644)
		}
		if err != nil {
			return &domain.OpError{Op: "fsworkspace.template", Kind: domain.KindExecution, Path: dst, Err: err}
		}
		return nil
	})
}

// ensureGitignore appends the entries missing from <root>/.gitignore under a
// single "# agegroup" header. An up to date file is not rewritten.
func ensureGitignore(root string, entries ...string) error {
	p := filepath.Join(root, ".gitignore")

	b, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	existing := string(b)

	var lines []string
	for _, l := range strings.Split(existing, "\n") {
		lines = append(lines, strings.TrimSpace(l))
	}

	var add []string
	if !slices.Contains(lines, gitignoreHeader) {
		add = append(add, gitignoreHeader)
	}
	for _, e := range entries {
		if !slices.Contains(lines, e) {
			add = append(add, e)
		}
	}
	if len(add) == 0 || (len(add) == 1 && add[0] == gitignoreHeader) {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	out.WriteString(strings.Join(add, "\n"))
	out.WriteByte('\n')

	return os.WriteFile(p, []byte(out.String()), 0o644)
}
