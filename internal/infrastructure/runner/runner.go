// Package runner executes external commands on the host.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

// Local runs commands directly via os/exec.
type Local struct {
	log zerolog.Logger
}

// NewLocal builds a runner logging command timings at debug level.
func NewLocal(log zerolog.Logger) *Local {
	return &Local{log: log}
}

// Run implements ports.CommandRunner.
func (l *Local) Run(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, &domain.InvocationError{Err: errors.New("empty argv")}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	l.log.Debug().
		Str("command", strings.Join(argv, " ")).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("external command finished")

	if err != nil {
		invErr := &domain.InvocationError{
			Argv:     argv,
			Stderr:   strings.TrimSpace(stderr.String()),
			ExitCode: -1,
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			invErr.ExitCode = exitErr.ExitCode()
		}
		return nil, invErr
	}
	return stdout.Bytes(), nil
}

var _ ports.CommandRunner = (*Local)(nil)
