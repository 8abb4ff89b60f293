package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/wf-go/internal/app"
)

func newAWSCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "aws [query]",
		Short: "Staged AWS inventory search (kind -> profile -> filter)",
		Long: "Resolves a staged inventory query: an empty or partial query\n" +
			"prompts for a resource kind, a completed kind prompts for a\n" +
			"credential profile, and the remaining text filters the listed\n" +
			"resources. Pass the query as one quoted argument so the trailing\n" +
			"space survives.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fb := container.Resolver.Resolve(cmd.Context(), rawQuery(args))
			return renderFeedback(cmd, fb)
		},
	}
}
