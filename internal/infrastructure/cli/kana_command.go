package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/wf-go/internal/app"
	"github.com/doeshing/wf-go/internal/domain"
)

func newKanaCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "kana [word]",
		Short: "Look up the katakana transliteration of an English word",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.TrimSpace(rawQuery(args))
			if word == "" {
				return renderFeedback(cmd, domain.Feedback{Items: []domain.Item{
					domain.NewItem("Enter an English word", "", "", "kana-usage", false),
				}})
			}
			fb := container.Kana.Lookup(cmd.Context(), word)
			return renderFeedback(cmd, fb)
		},
	}
}
