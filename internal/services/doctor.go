package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

// DoctorService runs environment preflight checks for the workflows.
type DoctorService struct {
	ConfigPath string
	Cache      ports.CacheRepository
	History    ports.HistoryRepository
	Runner     ports.CommandRunner
}

// Run reports tool availability and store writability. Checks are
// advisory; a failed check never aborts the remaining ones.
func (s *DoctorService) Run(ctx context.Context) []domain.HealthCheck {
	checks := []domain.HealthCheck{
		s.toolCheck(ctx, "aws CLI", []string{"aws", "--version"}),
		s.toolCheck(ctx, "Atlassian CLI", []string{"acli", "--version"}),
		s.pathCheck("config file", s.ConfigPath, false),
		s.pathCheck("cache directory", s.Cache.Dir(), true),
		s.pathCheck("history file", filepath.Dir(s.History.Path()), true),
	}
	return checks
}

func (s *DoctorService) toolCheck(ctx context.Context, name string, argv []string) domain.HealthCheck {
	out, err := s.Runner.Run(ctx, argv)
	if err != nil {
		return domain.HealthCheck{Name: name, OK: false, Detail: diagnosticOf(err)}
	}
	version := strings.TrimSpace(string(out))
	if idx := strings.IndexByte(version, '\n'); idx > 0 {
		version = version[:idx]
	}
	return domain.HealthCheck{Name: name, OK: true, Detail: version}
}

func (s *DoctorService) pathCheck(name, path string, create bool) domain.HealthCheck {
	if create {
		if err := os.MkdirAll(path, domain.DirectoryPermissions); err != nil {
			return domain.HealthCheck{Name: name, OK: false, Detail: err.Error()}
		}
	}
	if _, err := os.Stat(path); err != nil {
		return domain.HealthCheck{Name: name, OK: false, Detail: err.Error()}
	}
	return domain.HealthCheck{Name: name, OK: true, Detail: path}
}
