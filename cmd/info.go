package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/e-marchand/fourd/internal/controller"
	"github.com/e-marchand/fourd/internal/domain"
	m "github.com/e-marchand/fourd/internal/model"
)

var infoCompactFlag bool
var infoFormatFlag string
var infoParallelFlag int

// infoCmd represents the info command.
var infoCmd = newInfoCmd()

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [path]",
		Short: "Analyze a 4D project and produce a structured summary",
		Long: `Locate the 4D project root from the given path (default: current
directory), scan its methods, classes, database methods and forms, and print
a structured report. Use --compact for summary counts and bare name lists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewSimpleUI(cmd)
			start := startPath(args)

			report, err := scanner.Scan(cmd.Context(), domain.ScanArgs{
				Start:    m.Path(start),
				Exclude:  viper.GetStringSlice(excludeConfigKey),
				Parallel: viper.GetInt(parallelConfigKey),
			})
			if err != nil {
				return err
			}

			slog.Debug("project scanned",
				"root", report.ProjectRoot,
				"methods", report.Summary.MethodsCount,
				"classes", report.Summary.ClassesCount,
			)

			format := controller.ReportFormat(infoFormatFlag)

			if infoCompactFlag {
				return ui.ShowCompactReport(domain.CompactReport(*report), format)
			}

			return ui.ShowReport(report, format)
		},
	}

	cmd.Flags().BoolVar(&infoCompactFlag, "compact", false, "summary counts and name lists only")
	cmd.Flags().StringVar(&infoFormatFlag, formatFlagName, viper.GetString(formatConfigKey), "output format: json or table")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().IntVarP(&infoParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel extractions")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
