package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/wf-go/internal/app"
)

func newJiraCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "jira [query]",
		Short: "Search issue tracker work items",
		Long: "Searches the configured project through the Atlassian CLI.\n" +
			"A leading 'me' narrows to your issues; '--all' anywhere in the\n" +
			"query loads every page instead of the first 50.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true, // --all belongs to the query, not cobra
		RunE: func(cmd *cobra.Command, args []string) error {
			fb := container.Issues.Search(cmd.Context(), rawQuery(args))
			return renderFeedback(cmd, fb)
		},
	}
}
