package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		// The launcher must still receive a feedback document, so startup
		// failures render as an item rather than a bare exit.
		failFeedback(err)
		return
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func failFeedback(err error) {
	fb := domain.Feedback{Items: []domain.Item{
		domain.NewItem("Workflow startup failed", err.Error(), "", "startup-error", false),
	}}
	json.NewEncoder(os.Stdout).Encode(fb)
	fmt.Fprintln(os.Stderr, "error:", err)
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("WF_DEBUG"), "1") || strings.EqualFold(os.Getenv("WF_DEBUG"), "true")
}
