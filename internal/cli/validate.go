package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axzolotle/learning-intern/internal/infra/logger"
	"github.com/axzolotle/learning-intern/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var dataset string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a dataset (names present, ages finite and non-negative)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer startLogging(cmd, ws.root)()

			path, err := resolveDatasetPath(ws, dataset)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateDataset(ws.datasets)
			ds, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				logger.L().Warn("validate.failed", "path", path, "err", err)
				return err
			}
			logger.L().Info("validate.ok", "dataset", ds.Name, "records", len(ds.Records))

			fmt.Fprintf(cmd.OutOrStdout(), "OK (%d records)\n", len(ds.Records))
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&dataset, "dataset", "d", "", "Dataset name or path (optional; defaults to workspace default dataset)")
	return c
}
