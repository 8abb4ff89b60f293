package runner

import (
	"context"
	"runtime"

	"github.com/doeshing/wf-go/internal/ports"
)

// URLOpener spawns the platform opener for a destination URL.
type URLOpener struct {
	runner ports.CommandRunner
}

// NewURLOpener builds an opener on top of a command runner.
func NewURLOpener(r ports.CommandRunner) *URLOpener {
	return &URLOpener{runner: r}
}

// Open implements ports.Opener.
func (o *URLOpener) Open(ctx context.Context, url string) error {
	_, err := o.runner.Run(ctx, []string{openCommand(), url})
	return err
}

func openCommand() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

var _ ports.Opener = (*URLOpener)(nil)
