package cmd

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/e-marchand/fourd/internal/controller"
	"github.com/e-marchand/fourd/internal/domain"
	m "github.com/e-marchand/fourd/internal/model"
)

var addNameFlag string
var addTagFlag string
var addVersionFlag string
var addDryRunFlag bool

const addLongDescription = `Record a dependency in the project's dependencies.json.

The repository argument is one of:
  owner/repo                                   GitHub repository
  https://github.com/owner/repo                GitHub URL
  https://github.com/owner/repo/releases/tag/T release URL (tag extracted)
  ../MyComponent                               local path

Local dependencies that are not siblings of the project are also recorded in
environment4d.json as file:// references.`

// addCmd represents the add command.
var addCmd = newAddCmd()

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <repository>",
		Short: "Add a dependency to a 4D project",
		Long:  addLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewSimpleUI(cmd)

			result, err := dependencies.Add(domain.AddRequest{
				Repo:    args[0],
				Name:    addNameFlag,
				Tag:     addTagFlag,
				Version: addVersionFlag,
				Start:   m.Path(startPath(nil)),
				DryRun:  addDryRunFlag,
			})
			if err != nil {
				return err
			}

			if addDryRunFlag {
				diff, err := manifestDiff(result)
				if err != nil {
					return err
				}

				ui.ShowLines(result.Messages...)
				ui.ShowLines(diff)

				return nil
			}

			ui.ShowLines(result.Messages...)

			return nil
		},
	}

	cmd.Flags().StringVar(&addNameFlag, "name", "", "override the dependency name")
	cmd.Flags().StringVar(&addTagFlag, "tag", "", "exact version tag (e.g. \"1.0.0\")")
	cmd.Flags().StringVar(&addVersionFlag, "version", "", "semantic version (e.g. \"latest\", \"1.1.0\")")
	cmd.Flags().BoolVar(&addDryRunFlag, "dry-run", false, "show the manifest change without writing")

	return cmd
}

// manifestDiff renders a unified diff between the manifest before and after
// the upsert.
func manifestDiff(result *domain.AddResult) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(result.Before)),
		B:        difflib.SplitLines(string(result.After)),
		FromFile: "dependencies.json",
		ToFile:   "dependencies.json",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(text, "\n"), nil
}

func init() {
	rootCmd.AddCommand(addCmd)
}
