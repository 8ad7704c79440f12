package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/axzolotle/learning-intern/internal/infra/logger"
)

func datasetsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "datasets",
		Short: "Manage datasets in a workspace",
	}

	c.AddCommand(datasetsListCmd())
	return c
}

func datasetsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List datasets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer startLogging(cmd, ws.root)()

			refs, err := ws.datasets.ListDatasets(ws.root)
			if err != nil {
				return err
			}
			logger.L().Debug("datasets.list", "root", ws.root, "count", len(refs))

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no datasets found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n", ws.root)
			fmt.Fprintf(out, "Default:   %s\n\n", ws.cfg.Defaults.Dataset)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
