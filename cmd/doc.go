package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/e-marchand/fourd/internal/controller"
	"github.com/e-marchand/fourd/internal/domain"
)

var docFetchFlag bool
var docMaxCharsFlag int

// docCmd represents the doc command.
var docCmd = newDocCmd()

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc <command|class|topic>",
		Short: "Look up 4D documentation by command, class, or topic name",
		Long: `Resolve a 4D command, class, or topic to its developer.4d.com URL.
With --fetch the page is downloaded and reduced to plain text.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewSimpleUI(cmd)
			query := strings.Join(args, " ")

			link := domain.ResolveDoc(query)

			if !docFetchFlag {
				return ui.ShowJSON(link)
			}

			content, err := docFetcher.Fetch(cmd.Context(), link.URL, docMaxCharsFlag)

			result := struct {
				domain.DocLink
				Content string `json:"content"`
			}{DocLink: link}

			if err != nil {
				// Fetch failures are reported inline; the resolved URL is
				// still useful on its own.
				result.Content = err.Error()
			} else {
				result.Content = content
			}

			return ui.ShowJSON(result)
		},
	}

	cmd.Flags().BoolVar(&docFetchFlag, "fetch", false, "fetch and extract the page content")
	cmd.Flags().IntVar(&docMaxCharsFlag, "max-chars", 4000, "truncate fetched content to this many characters")

	return cmd
}

func init() {
	rootCmd.AddCommand(docCmd)
}
