package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the fourd version",
		Long:  "Prints the fourd build version and the Go toolchain it was built with.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("fourd (version unknown)")
				return
			}

			version := info.Main.Version
			if version == "" {
				// Builds outside a module, e.g. plain `go build` in a
				// checkout, carry no main module version.
				version = "(devel)"
			}

			cmd.Printf("fourd %s (built with %s)\n", version, info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
