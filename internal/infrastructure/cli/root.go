// Package cli wires the cobra command tree.
//
// Script-filter subcommands always print a feedback document and exit 0;
// failures surface as non-actionable items so the host launcher never sees
// a crash.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/wf-go/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd builds the root command with all workflow subcommands.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "wf",
		Short: "wf - launcher script filter adapters",
		Long: "wf answers launcher script-filter queries: AWS inventory, issue\n" +
			"tracker search, katakana lookup and channel launching. Each\n" +
			"subcommand prints a JSON feedback document on stdout.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAWSCommand(container))
	root.AddCommand(newJiraCommand(container))
	root.AddCommand(newKanaCommand(container))
	root.AddCommand(newSlackCommand(container))
	root.AddCommand(newOpenCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newCacheCommand(container))
	root.AddCommand(newDoctorCommand(container))
	return root, nil
}
