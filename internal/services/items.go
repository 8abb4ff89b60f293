package services

import (
	"fmt"
	"strings"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

const openHint = "↵ open console · ⌘ copy URL"

// copyURLMod is the secondary action: copy the destination without opening
// it, and without a history write.
func copyURLMod(url string) map[string]domain.Mod {
	return map[string]domain.Mod{
		"cmd": {Valid: true, Arg: url, Subtitle: "Copy console URL to clipboard"},
	}
}

// resultItem renders one surviving resource record.
func resultItem(kind domain.ResourceKind, rec domain.ResultRecord, url string) domain.Item {
	uid := rec.ID
	if uid == "" {
		uid = rec.Name
	}
	if uid == "" {
		uid = url
	}
	subtitle := rec.Detail
	if subtitle != "" {
		subtitle += " | "
	}
	subtitle += openHint

	item := domain.NewItem(
		fmt.Sprintf("%s: %s", strings.ToUpper(string(kind)), rec.DisplayName()),
		subtitle,
		url,
		uid,
		true,
	)
	item.Mods = copyURLMod(url)
	return item
}

// loginRemediationItem offers re-authentication for a profile, chaining the
// SSO start URL when local configuration can resolve one.
func loginRemediationItem(profile, title string, sso ports.SSOResolver) domain.Item {
	arg := fmt.Sprintf("aws sso login --profile %s", profile)
	subtitle := "↵ run " + arg
	if sso != nil {
		if url, ok := sso.StartURL(profile); ok {
			arg = fmt.Sprintf("%s && open %s", arg, url)
			subtitle += " and open the SSO start page"
		}
	}
	return domain.NewItem(title, subtitle, arg, "sso-login-"+profile, true)
}

// remediationItems substitutes the result list after a classified failure.
// The substitution is total: callers never mix these with resource items.
func remediationItems(cerr domain.ClassifiedError, sso ports.SSOResolver) []domain.Item {
	switch cerr.Class {
	case domain.ClassExpiredSession:
		title := fmt.Sprintf("Session expired for profile '%s'", cerr.Profile)
		return []domain.Item{loginRemediationItem(cerr.Profile, title, sso)}
	case domain.ClassNotFound:
		return []domain.Item{domain.NewItem(
			"Command not found",
			cerr.Message,
			"",
			"command-not-found",
			false,
		)}
	default:
		return []domain.Item{domain.NewItem(
			"AWS command failed",
			cerr.Message,
			"",
			"aws-error",
			false,
		)}
	}
}

func unsupportedKindItem(kind string) domain.Item {
	return domain.NewItem(
		"Invalid Service",
		fmt.Sprintf("'%s' is not supported", kind),
		kind,
		kind,
		false,
	)
}

func unknownProfileItem(profile string) domain.Item {
	return domain.NewItem(
		"Unknown Profile",
		fmt.Sprintf("'%s' is not a configured profile", profile),
		profile,
		profile,
		false,
	)
}

func noResultsItem(query string) domain.Item {
	return domain.NewItem(
		"No Results",
		"No items match your query",
		query,
		query,
		false,
	)
}
