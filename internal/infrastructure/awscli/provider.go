// Package awscli adapts profile-scoped lookups onto the aws CLI.
package awscli

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

// Provider answers region and credential questions for a profile.
type Provider struct {
	runner        ports.CommandRunner
	defaultRegion string
	log           zerolog.Logger
}

// NewProvider builds a provider falling back to defaultRegion.
func NewProvider(runner ports.CommandRunner, defaultRegion string, log zerolog.Logger) *Provider {
	if defaultRegion == "" {
		defaultRegion = domain.DefaultRegion
	}
	return &Provider{runner: runner, defaultRegion: defaultRegion, log: log}
}

// Region implements ports.RegionResolver. Lookup failure degrades to the
// configured default; re-querying each run is cheap relative to listings.
func (p *Provider) Region(ctx context.Context, profile string) string {
	out, err := p.runner.Run(ctx, []string{"aws", "configure", "get", "region", "--profile", profile})
	if err != nil {
		p.log.Debug().Str("profile", profile).Err(err).Msg("region lookup failed, using default")
		return p.defaultRegion
	}
	region := strings.TrimSpace(string(out))
	if region == "" {
		return p.defaultRegion
	}
	return region
}

// IsValid implements ports.CredentialChecker. A minimal identity check
// under a short timeout; every failure mode reads as invalid.
func (p *Provider) IsValid(ctx context.Context, profile string) bool {
	ctx, cancel := context.WithTimeout(ctx, domain.CredentialCheckTimeout)
	defer cancel()
	_, err := p.runner.Run(ctx, []string{"aws", "sts", "get-caller-identity", "--profile", profile, "--output", "json"})
	if err != nil {
		p.log.Debug().Str("profile", profile).Err(err).Msg("credential check failed")
		return false
	}
	return true
}

var _ ports.RegionResolver = (*Provider)(nil)
var _ ports.CredentialChecker = (*Provider)(nil)
