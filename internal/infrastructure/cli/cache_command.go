package cli

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/wf-go/internal/app"
	"github.com/doeshing/wf-go/internal/domain"
)

func newCacheCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear cached external payloads",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List cache entries with age and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := container.Cache.Entries()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Printf("cache is empty (%s)\n", container.Cache.Dir())
				return nil
			}
			now := time.Now()
			for _, entry := range entries {
				state := ""
				if !entry.Fresh(domain.DefaultCacheTTL, now) {
					state = "  (stale)"
				}
				cmd.Printf("%-40s %10s  %s%s\n",
					entry.Key,
					humanize.Bytes(uint64(entry.Size)),
					humanize.Time(entry.ModTime),
					state,
				)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Cache.Clear(); err != nil {
				return err
			}
			cmd.Printf("cache cleared (%s)\n", container.Cache.Dir())
			return nil
		},
	})
	return cmd
}
