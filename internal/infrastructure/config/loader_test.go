package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("default config file not written: %v", statErr)
	}
	if cfg.DefaultRegion != "ap-northeast-1" {
		t.Fatalf("region = %q", cfg.DefaultRegion)
	}
	if _, ok := cfg.Services["ec2"]; !ok {
		t.Fatal("default services missing ec2")
	}
	if _, ok := cfg.Profiles["prod"]; !ok {
		t.Fatal("default profiles missing prod")
	}
}

func TestLoadReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `default_region: eu-west-1
services:
  ec2: Instances
profiles:
  sandbox: Sandbox environment
jira:
  project: OPS
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultRegion != "eu-west-1" {
		t.Fatalf("region = %q", cfg.DefaultRegion)
	}
	if len(cfg.Services) != 1 || len(cfg.Profiles) != 1 {
		t.Fatalf("tables not taken from file: %+v", cfg)
	}
	if cfg.Jira.Project != "OPS" {
		t.Fatalf("jira project = %q, want file value kept over fallback", cfg.Jira.Project)
	}
}

func TestLoadHydratesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_region: \"\"\n"), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	t.Setenv("JIRA_USERNAME", "dev@example.com")
	t.Setenv("JIRA_PROJECT", "")

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultRegion != "ap-northeast-1" {
		t.Fatalf("region = %q, want default backfill", cfg.DefaultRegion)
	}
	if len(cfg.Services) == 0 || len(cfg.Profiles) == 0 {
		t.Fatal("empty tables must fall back to the defaults")
	}
	if cfg.Jira.Username != "dev@example.com" {
		t.Fatalf("jira username = %q, want environment fallback", cfg.Jira.Username)
	}
	if cfg.Jira.Project != "DBRE" {
		t.Fatalf("jira project = %q, want built-in fallback", cfg.Jira.Project)
	}
	if cfg.Slack.EnvFile == "" {
		t.Fatal("slack env file path must default")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("services: [unclosed"), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestPathHonorsEnvironmentOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "alt.yaml")
	t.Setenv("WF_CONFIG", override)

	if got := NewFileLoader("").Path(); got != override {
		t.Fatalf("Path() = %q, want %q", got, override)
	}
	// An explicit path wins over the environment.
	if got := NewFileLoader("/etc/wf.yaml").Path(); got != "/etc/wf.yaml" {
		t.Fatalf("Path() = %q", got)
	}
}
