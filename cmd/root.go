// Package cmd provides the root command and CLI setup for fourd.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/e-marchand/fourd/internal/adapter"
	"github.com/e-marchand/fourd/internal/domain"
)

var projectFS adapter.ProjectFS
var commandRunner adapter.CommandRunner
var docFetcher adapter.DocFetcher
var scanner *domain.Scanner
var dependencies *domain.DependencyService
var cleaner *domain.Cleaner
var validator *domain.FormValidator
var publisher *domain.Publisher
var workflowInstaller *domain.WorkflowInstaller
var locator *domain.Locator

// projectFlag is a root-level flag: where root location starts.
var projectFlag string

// excludePatterns filters source files for applicable commands.
var excludePatterns []string

// verboseFlag switches the log level to debug.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	projectFS = adapter.NewLocalProjectFS()
	commandRunner = adapter.NewLocalCommandRunner()
	docFetcher = adapter.NewHTTPDocFetcher()
	scanner = domain.NewScanner(projectFS)
	dependencies = domain.NewDependencyService(projectFS)
	cleaner = domain.NewCleaner(projectFS)
	validator = domain.NewFormValidator(projectFS)
	publisher = domain.NewPublisher(projectFS, commandRunner)
	workflowInstaller = domain.NewWorkflowInstaller(projectFS)
	locator = domain.NewLocator(projectFS)
}

const rootLongDescription = `fourd is a command-line toolbox for 4D projects: it locates the project
root from anywhere inside the tree, inventories methods, classes and forms,
maintains the dependency manifest, and wraps the publishing chores
(git/gh/glab, CI workflows, cache cleaning).`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fourd",
		Short: "4D project toolbox",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&projectFlag, projectFlagName, "C",
			"",
			"path inside the 4D project (default: current directory)",
		)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// startPath resolves the scan start: the --project flag, an optional
// positional argument, or the working directory.
func startPath(args []string) string {
	if projectFlag != "" {
		return projectFlag
	}

	if len(args) > 0 {
		return args[0]
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}

	return wd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
