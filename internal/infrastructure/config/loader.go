// Package config loads the YAML configuration file.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/pkg/filesystem"
	"github.com/doeshing/wf-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.wf/config.yaml (overridable
// via WF_CONFIG). A missing file is created with defaults on first load.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return hydrateDefaults(cfg), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// Path reports where configuration is read from.
func (l *FileLoader) Path() string { return l.resolvePath() }

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("WF_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".wf", "config.yaml")
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		DefaultRegion:       domain.DefaultRegion,
		Services: map[string]string{
			"ec2":    "Elastic Compute Cloud (EC2) instances",
			"rds":    "Relational Database Service (RDS) instances",
			"lambda": "Lambda functions",
			"dynamo": "DynamoDB tables",
			"sfn":    "Step Functions",
			"secret": "Secrets Manager",
		},
		Profiles: map[string]string{
			"lab":  "Lab environment",
			"inte": "Integration environment",
			"prod": "Production environment",
			"dev":  "Development environment",
			"stg":  "Staging environment",
		},
	}
}

// hydrateDefaults fills gaps in partial configuration files. Jira settings
// fall back to the environment so workflow variables keep working.
func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = domain.DefaultRegion
	}
	if len(cfg.Services) == 0 {
		cfg.Services = defaultConfig().Services
	}
	if len(cfg.Profiles) == 0 {
		cfg.Profiles = defaultConfig().Profiles
	}
	if cfg.Jira.Username == "" {
		cfg.Jira.Username = os.Getenv("JIRA_USERNAME")
	}
	if cfg.Jira.BaseURL == "" {
		cfg.Jira.BaseURL = os.Getenv("JIRA_BASE_URL")
	}
	if cfg.Jira.Project == "" {
		cfg.Jira.Project = envOr("JIRA_PROJECT", "DBRE")
	}
	if cfg.Jira.IssueType == "" {
		cfg.Jira.IssueType = os.Getenv("JIRA_TYPE")
	}
	if cfg.Slack.EnvFile == "" {
		cfg.Slack.EnvFile = filepath.Join(filesystem.UserHomeDir(), ".wf", "slack.env")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
