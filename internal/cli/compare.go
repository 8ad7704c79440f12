package cli

import (
	"github.com/spf13/cobra"

	"github.com/axzolotle/learning-intern/internal/domain"
	"github.com/axzolotle/learning-intern/internal/infra/logger"
	"github.com/axzolotle/learning-intern/internal/usecase"
)

func compareCmd() *cobra.Command {
	var workspace string
	var dataset string
	var format string
	var right bool
	var includeLowest bool
	var probes bool

	c := &cobra.Command{
		Use:   "compare [AGE...]",
		Short: "Compare the age group rule with interval binning",
		Long: "Shows, per age, the canonical left-inclusive group next to the group produced by\n" +
			"binning over the edges 0, 17, 35, 50, 100. Divergences are reported, not treated as failures.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []domain.Record

			if len(args) > 0 {
				ages, err := parseAges(args)
				if err != nil {
					return err
				}
				for i, a := range ages {
					records = append(records, domain.Record{Name: args[i], Age: a})
				}
			} else {
				ws, err := loadWorkspace(workspace)
				if err != nil {
					return err
				}
				defer startLogging(cmd, ws.root)()

				path, err := resolveDatasetPath(ws, dataset)
				if err != nil {
					return err
				}
				ds, err := ws.datasets.LoadDataset(path)
				if err != nil {
					return err
				}
				records = ds.Records
			}

			uc := usecase.NewCompareBinning(usecase.WithEdgeProbes(probes))
			res, err := uc.Execute(cmd.Context(), records, domain.StandardBins(right, includeLowest))
			if err != nil {
				return err
			}
			logger.L().Info("compare.done",
				"bins", res.Bins,
				"rows", len(res.Rows),
				"divergent", res.Divergent,
			)
			return printComparison(cmd.OutOrStdout(), res, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&dataset, "dataset", "d", "", "Dataset name or path (optional; defaults to workspace default dataset)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&right, "right", false, "Close intervals on the right: (lo, hi]")
	c.Flags().BoolVar(&includeLowest, "include-lowest", false, "Include the first edge in the first interval")
	c.Flags().BoolVar(&probes, "probes", false, "Append one row per bin edge")
	return c
}
