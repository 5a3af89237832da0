package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e-marchand/fourd/internal/controller"
	"github.com/e-marchand/fourd/internal/domain"
	m "github.com/e-marchand/fourd/internal/model"
)

var publishPublicFlag bool
var publishDescriptionFlag string
var publishRemoteFlag string

// publishCmd represents the publish command.
var publishCmd = newPublishCmd()

func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a 4D project to GitHub or GitLab",
		Long: `Initialize a git repository if needed, create the hosting remote with
gh or glab, and push. All choices come from flags; nothing is prompted.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewSimpleUI(cmd)

			remote := domain.RemoteKind(publishRemoteFlag)
			if remote != domain.RemoteGitHub && remote != domain.RemoteGitLab {
				return fmt.Errorf("unknown remote %q (use github or gitlab)", publishRemoteFlag)
			}

			root, err := locator.Locate(m.Path(startPath(nil)))
			if err != nil {
				return err
			}

			status, err := publisher.Publish(cmd.Context(), root, domain.PublishOptions{
				Remote:      remote,
				Public:      publishPublicFlag,
				Description: publishDescriptionFlag,
			})

			if status != nil {
				ui.ShowLines(fmt.Sprintf("Project: %s", status.ProjectName))
				ui.ShowLines(fmt.Sprintf("Path: %s", status.Root))
				ui.ShowLines(status.Messages...)
			}

			return err
		},
	}

	cmd.Flags().BoolVar(&publishPublicFlag, "public", false, "create a public repository (default: private)")
	cmd.Flags().StringVarP(&publishDescriptionFlag, "description", "d", "", "repository description")
	cmd.Flags().StringVar(&publishRemoteFlag, "remote", string(domain.RemoteGitHub), "hosting service: github or gitlab")

	return cmd
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
