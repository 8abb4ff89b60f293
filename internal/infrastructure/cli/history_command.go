package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/wf-go/internal/app"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [query]",
		Short: "Search previously opened destinations",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fb := container.Resolver.HistoryFeedback(strings.TrimSpace(rawQuery(args)))
			return renderFeedback(cmd, fb)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the history log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.History.Clear(); err != nil {
				return err
			}
			cmd.Printf("history cleared (%s)\n", container.History.Path())
			return nil
		},
	})
	return cmd
}
