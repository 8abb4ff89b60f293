package awscli

import (
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/doeshing/wf-go/internal/pkg/filesystem"
	"github.com/doeshing/wf-go/internal/ports"
)

// SharedConfigResolver finds a profile's SSO start URL, first from explicit
// overrides, then from the AWS shared config file. Absence of either is
// normal and not an error.
type SharedConfigResolver struct {
	path      string
	overrides map[string]string
}

// NewSharedConfigResolver builds a resolver over ~/.aws/config unless
// another path is given.
func NewSharedConfigResolver(path string, overrides map[string]string) *SharedConfigResolver {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".aws", "config")
	}
	return &SharedConfigResolver{path: path, overrides: overrides}
}

// StartURL implements ports.SSOResolver.
func (r *SharedConfigResolver) StartURL(profile string) (string, bool) {
	if url := r.overrides[profile]; url != "" {
		return url, true
	}

	file, err := ini.Load(r.path)
	if err != nil {
		return "", false
	}
	sec, err := file.GetSection(sectionName(profile))
	if err != nil {
		return "", false
	}
	if url := sec.Key("sso_start_url").String(); url != "" {
		return url, true
	}
	// Newer CLI layouts link the profile to an sso-session block.
	if session := sec.Key("sso_session").String(); session != "" {
		if sess, err := file.GetSection("sso-session " + session); err == nil {
			if url := sess.Key("sso_start_url").String(); url != "" {
				return url, true
			}
		}
	}
	return "", false
}

// The default profile lives in a bare [default] section.
func sectionName(profile string) string {
	if profile == "default" {
		return "default"
	}
	return "profile " + profile
}

var _ ports.SSOResolver = (*SharedConfigResolver)(nil)
