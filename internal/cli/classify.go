package cli

import (
	"github.com/spf13/cobra"

	"github.com/axzolotle/learning-intern/internal/domain"
	"github.com/axzolotle/learning-intern/internal/infra/logger"
	"github.com/axzolotle/learning-intern/internal/usecase"
)

func classifyCmd() *cobra.Command {
	var workspace string
	var dataset string
	var format string
	var noSave bool
	var workers int

	c := &cobra.Command{
		Use:   "classify [AGE...]",
		Short: "Classify ages, or every record of a dataset, into age groups",
		Long: "With AGE arguments the ages are classified directly and nothing is saved.\n" +
			"Without arguments the dataset (default from agegroup.yaml) is classified and a report is saved under reports/.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				ages, err := parseAges(args)
				if err != nil {
					return err
				}
				rows, err := usecase.NewClassifyAges(workers).Execute(cmd.Context(), ages)
				if err != nil {
					return err
				}
				report := domain.Report{Rows: rows, Summary: domain.Summarize(rows)}
				if format == "" {
					format = "pretty"
				}
				return printReport(out, report, "", format)
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer startLogging(cmd, ws.root)()

			path, err := resolveDatasetPath(ws, dataset)
			if err != nil {
				return err
			}

			if format == "" {
				format = ws.cfg.Defaults.Format
			}
			if workers < 1 {
				workers = ws.cfg.Defaults.Workers
			}

			store := ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewClassifyDataset(ws.datasets, store,
				usecase.WithWorkers(workers),
				usecase.WithLogger(logger.L()),
			)

			report, id, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				if len(report.Rows) > 0 {
					_ = printReport(out, report, id, format)
				}
				return err
			}

			return printReport(out, report, id, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&dataset, "dataset", "d", "", "Dataset name or path (optional; defaults to workspace default dataset)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json|table (default from workspace config)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save a report under reports/")
	c.Flags().IntVar(&workers, "workers", 0, "Classification workers (default from workspace config)")
	return c
}
