package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e-marchand/fourd/internal/controller"
	"github.com/e-marchand/fourd/internal/domain"
	m "github.com/e-marchand/fourd/internal/model"
)

var workflowsBuildFlag bool
var workflowsReleaseOnTagFlag bool
var workflowsReleaseOnCreateFlag bool
var workflowsForceFlag bool

// workflowsCmd represents the workflows command.
var workflowsCmd = newWorkflowsCmd()

func newWorkflowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflows [path]",
		Short: "Install CI workflow templates into a 4D project",
		Long: `Install the bundled GitHub Actions workflow templates into the
project's .github/workflows directory. Existing files are kept unless
--force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewSimpleUI(cmd)

			if workflowsReleaseOnTagFlag && workflowsReleaseOnCreateFlag {
				return fmt.Errorf("cannot install both release workflow variants")
			}

			root, err := locator.Locate(m.Path(startPath(args)))
			if err != nil {
				return err
			}

			release := domain.ReleaseNone

			switch {
			case workflowsReleaseOnTagFlag:
				release = domain.ReleaseOnTag
			case workflowsReleaseOnCreateFlag:
				release = domain.ReleaseOnCreate
			}

			installed, skipped, err := workflowInstaller.Install(root, domain.WorkflowOptions{
				Build:   workflowsBuildFlag,
				Release: release,
				Force:   workflowsForceFlag,
			})
			if err != nil {
				return err
			}

			for _, name := range installed {
				ui.ShowLines("  Added: " + name)
			}

			for _, name := range skipped {
				ui.ShowLines("  Skipped: " + name + " (already exists)")
			}

			if len(installed) == 0 && len(skipped) == 0 {
				ui.ShowLines("Nothing selected; use --build, --release-on-tag, or --release-on-create")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&workflowsBuildFlag, "build", false, "install the build workflow")
	cmd.Flags().BoolVar(&workflowsReleaseOnTagFlag, "release-on-tag", false, "install the release workflow triggered on tag push")
	cmd.Flags().BoolVar(&workflowsReleaseOnCreateFlag, "release-on-create", false, "install the release workflow triggered on release create")
	cmd.Flags().BoolVar(&workflowsForceFlag, "force", false, "overwrite existing workflow files")

	return cmd
}

func init() {
	rootCmd.AddCommand(workflowsCmd)
}
