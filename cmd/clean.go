package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e-marchand/fourd/internal/controller"
	m "github.com/e-marchand/fourd/internal/model"
)

var cleanDryRunFlag bool

// cleanCmd represents the clean command.
var cleanCmd = newCleanCmd()

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "Remove generated files and caches from a 4D project",
		Long: `Remove DerivedData folders, the Libraries folder, userPreferences.*
folders, Project/Trash, the contents of Logs, and OS junk files
(.DS_Store, Thumbs.db, ehthumbs.db).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewSimpleUI(cmd)

			root, err := locator.Locate(m.Path(startPath(args)))
			if err != nil {
				return err
			}

			ui.ShowLines(fmt.Sprintf("Cleaning 4D project: %s", root))

			removed, err := cleaner.Clean(root, cleanDryRunFlag)
			if err != nil {
				return err
			}

			if len(removed) == 0 {
				ui.ShowLines("Nothing to clean")
				return nil
			}

			verb := "Removed"
			if cleanDryRunFlag {
				verb = "Would remove"
			}

			ui.ShowLines(fmt.Sprintf("%s %d items:", verb, len(removed)))

			for _, item := range removed {
				ui.ShowLines("  - " + item)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&cleanDryRunFlag, "dry-run", false, "list targets without removing them")

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
