package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e-marchand/fourd/internal/controller"
	m "github.com/e-marchand/fourd/internal/model"
)

var validateSchemaFlag string

// validateCmd represents the validate command.
var validateCmd = newValidateCmd()

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <form-file>",
		Short: "Validate a 4D form file against the form JSON schema",
		Long: `Validate a .4DForm file against the bundled JSON schema, or against a
schema given with --schema. Every violation is listed with its location.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewSimpleUI(cmd)

			violations, err := validator.Validate(m.Path(args[0]), m.Path(validateSchemaFlag))
			if err != nil {
				return err
			}

			if len(violations) == 0 {
				ui.ShowLines(fmt.Sprintf("%s is valid", args[0]))
				return nil
			}

			ui.ShowLines(fmt.Sprintf("%s has %d error(s):", args[0], len(violations)))

			for _, violation := range violations {
				ui.ShowLines("  - " + violation)
			}

			return fmt.Errorf("form validation failed")
		},
	}

	cmd.Flags().StringVar(&validateSchemaFlag, "schema", "", "path to an alternate schema file")

	return cmd
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
