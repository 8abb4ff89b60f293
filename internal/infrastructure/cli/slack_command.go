package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/wf-go/internal/app"
)

func newSlackCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "slack [query]",
		Short: "List configured chat channels as deep links",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fb := container.Channels.List(strings.TrimSpace(rawQuery(args)))
			return renderFeedback(cmd, fb)
		},
	}
}
