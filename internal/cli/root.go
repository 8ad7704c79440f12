package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/axzolotle/learning-intern/internal/infra/fsworkspace"
	"github.com/axzolotle/learning-intern/internal/infra/logger"
	"github.com/axzolotle/learning-intern/internal/infra/workspacefinder"
	"github.com/axzolotle/learning-intern/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "agegroup",
		Short:        "agegroup: derive age groups from dataset ages",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .agegroup/logs/agegroup.log")

	cmd.AddCommand(
		classifyCmd(),
		validateCmd(),
		compareCmd(),
		datasetsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// startLogging opens the workspace log file for a subcommand. The returned
// func is always safe to call.
func startLogging(cmd *cobra.Command, root string) func() {
	debug, _ := cmd.Flags().GetBool("debug")
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
