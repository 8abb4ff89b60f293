package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/wf-go/internal/domain"
)

// rawQuery reassembles the launcher query. Launchers pass it as a single
// argument, which preserves the semantically significant trailing space;
// shell-split words are joined as complete tokens.
func rawQuery(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return strings.Join(args, " ")
}

// renderFeedback prints the feedback document to the command's stdout. The
// items field is always an array, never null.
func renderFeedback(cmd *cobra.Command, fb domain.Feedback) error {
	if fb.Items == nil {
		fb.Items = []domain.Item{}
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(fb)
}
