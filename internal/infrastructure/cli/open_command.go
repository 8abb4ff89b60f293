package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/wf-go/internal/app"
	"github.com/doeshing/wf-go/internal/domain"
)

func newOpenCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "open <url> [title...]",
		Short: "Open a destination URL and record it in history",
		Long: "The confirmed-open step behind actionable items: appends exactly\n" +
			"one history entry for the destination, then hands the URL to the\n" +
			"platform opener. The title defaults to the URL.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			title := strings.Join(args[1:], " ")

			entry := domain.HistoryEntry{URL: url, Title: title}
			if err := container.History.Record(entry); err != nil {
				// The open still proceeds; losing one log line is acceptable.
				container.Log.Warn().Err(err).Str("url", url).Msg("history append failed")
			}
			return container.Opener.Open(cmd.Context(), url)
		},
	}
}
