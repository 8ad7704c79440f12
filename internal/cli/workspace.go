package cli

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/axzolotle/learning-intern/internal/domain"
	"github.com/axzolotle/learning-intern/internal/infra/fsdataset"
	"github.com/axzolotle/learning-intern/internal/infra/reportstore"
	"github.com/axzolotle/learning-intern/internal/infra/workspacefinder"
	"github.com/axzolotle/learning-intern/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	datasets ports.DatasetLoader
	store    ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := fsdataset.NewLoader(
		fsdataset.WithDatasetsDir(cfg.Paths.DatasetsDir),
	)

	store := reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))

	return &workspaceCtx{
		root:     root,
		cfg:      cfg,
		datasets: loader,
		store:    store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `agegroup init`): %w", wd, err)
	}
	return root, nil
}

// resolveDatasetPath turns a dataset name, file name or path into a file path.
// An empty arg selects the workspace default dataset.
func resolveDatasetPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Dataset
	}
	if in == "" {
		return "", fmt.Errorf("dataset is required (use --dataset or -d)")
	}

	// If arg looks like a path (contains separators), resolve relative to workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	datasetsDir := filepath.Join(ws.root, ws.cfg.Paths.DatasetsDir)

	// "customers.csv" is a file under the datasets dir.
	if fsdataset.IsDatasetFile(in) {
		p := filepath.Join(datasetsDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	// "customers" may be customers.yaml / .yml / .csv.
	for _, ext := range []string{".yaml", ".yml", ".csv"} {
		p := filepath.Join(datasetsDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// As a last resort: match by dataset "name" field.
	refs, err := ws.datasets.ListDatasets(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_dataset",
		Kind: domain.KindNotFound,
		Path: datasetsDir,
		Err:  fmt.Errorf("dataset %q: %w", in, domain.ErrNotFound),
	}
}

// parseAges converts positional arguments into ages. Anything that is not a
// finite number is rejected here; Classify itself never fails. Negative ages
// pass through (pass them after "--").
func parseAges(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &domain.OpError{
				Op:   "cli.parse_ages",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("age %q is not a valid age: %w", a, domain.ErrInvalidInput),
			}
		}
		out = append(out, v)
	}
	return out, nil
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
