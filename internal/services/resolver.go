package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

// Resolver interprets the staged inventory query: pick a resource kind,
// pick a credential profile, then search within the listed resources. The
// stage is derived purely from the tokenized query (domain.ParseQuery).
type Resolver struct {
	Config      domain.Config
	Registry    *Registry
	Credentials ports.CredentialChecker
	Regions     ports.RegionResolver
	History     ports.HistoryStore
	SSO         ports.SSOResolver
	Log         zerolog.Logger
}

// Resolve turns a raw query into the feedback document. The result list is
// never empty: a "no results" item substitutes when nothing survives.
func (r *Resolver) Resolve(ctx context.Context, raw string) domain.Feedback {
	items := r.resolveItems(ctx, raw)
	if len(items) == 0 {
		items = []domain.Item{noResultsItem(strings.TrimSpace(raw))}
	}
	return domain.Feedback{Items: items}
}

func (r *Resolver) resolveItems(ctx context.Context, raw string) []domain.Item {
	// The reserved history kind bypasses profiles and credentials entirely.
	if filter, ok := historyQuery(raw); ok {
		return r.historyItems(filter)
	}

	parsed := domain.ParseQuery(raw)
	switch parsed.Stage {
	case domain.StageKind:
		return r.kindPrompts(parsed.Partial)
	case domain.StageProfile:
		return r.profilePrompts(parsed.Kind)
	default:
		return r.search(ctx, parsed)
	}
}

// historyQuery matches queries whose completed first token is the reserved
// history kind; the remainder is a free-text filter.
func historyQuery(raw string) (string, bool) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 || tokens[0] != string(domain.KindHistory) {
		return "", false
	}
	if len(tokens) == 1 && !strings.HasSuffix(raw, " ") {
		return "", false
	}
	return strings.Join(tokens[1:], " "), true
}

func (r *Resolver) kindPrompts(partial string) []domain.Item {
	descriptions := make(map[string]string, len(r.Config.Services)+1)
	for kind, desc := range r.Config.Services {
		descriptions[kind] = desc
	}
	descriptions[string(domain.KindHistory)] = "previously opened destinations"

	kinds := make([]string, 0, len(descriptions))
	for kind := range descriptions {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	var items []domain.Item
	for _, kind := range kinds {
		if partial != "" && !strings.Contains(strings.ToLower(kind), strings.ToLower(partial)) {
			continue
		}
		item := domain.NewItem(
			"Service: "+kind,
			"Search for "+strings.TrimSpace(descriptions[kind]),
			kind,
			kind,
			false,
		)
		item.Autocomplete = kind + " "
		items = append(items, item)
	}
	return items
}

func (r *Resolver) profilePrompts(kind string) []domain.Item {
	if !r.Config.KnownService(kind) {
		return []domain.Item{unsupportedKindItem(kind)}
	}

	profiles := make([]string, 0, len(r.Config.Profiles))
	for profile := range r.Config.Profiles {
		profiles = append(profiles, profile)
	}
	sort.Strings(profiles)

	items := make([]domain.Item, 0, len(profiles))
	for _, profile := range profiles {
		item := domain.NewItem(
			"Profile: "+profile,
			"Use the "+strings.TrimSpace(r.Config.Profiles[profile]),
			fmt.Sprintf("%s %s", kind, profile),
			profile,
			false,
		)
		item.Autocomplete = fmt.Sprintf("%s %s ", kind, profile)
		items = append(items, item)
	}
	return items
}

// search validates kind before profile, each failure short-circuiting with
// its own diagnostic item, then runs the credential fast-path before
// delegating to the adapter registry.
func (r *Resolver) search(ctx context.Context, parsed domain.ParsedQuery) []domain.Item {
	if !r.Config.KnownService(parsed.Kind) {
		return []domain.Item{unsupportedKindItem(parsed.Kind)}
	}
	if !r.Config.KnownProfile(parsed.Profile) {
		return []domain.Item{unknownProfileItem(parsed.Profile)}
	}

	if !r.Credentials.IsValid(ctx, parsed.Profile) {
		// No listing call has been attempted yet; this is the pre-flight
		// variant of the remediation, not a classified listing failure.
		title := fmt.Sprintf("Credentials invalid or expired for profile '%s'", parsed.Profile)
		return []domain.Item{loginRemediationItem(parsed.Profile, title, r.SSO)}
	}

	region := r.Regions.Region(ctx, parsed.Profile)
	return r.Registry.List(ctx, domain.ResourceKind(parsed.Kind), parsed.Profile, region, parsed.Filter)
}

// historyItems serves both the reserved kind and the history subcommand.
func (r *Resolver) historyItems(filter string) []domain.Item {
	entries, err := r.History.Search(filter, domain.HistorySearchLimit)
	if err != nil {
		r.Log.Warn().Err(err).Msg("history search failed")
		return []domain.Item{domain.NewItem("History unavailable", err.Error(), "", "history-error", false)}
	}

	items := make([]domain.Item, 0, len(entries))
	for _, entry := range entries {
		item := domain.NewItem(entry.Title, entry.URL, entry.URL, entry.URL, true)
		item.Mods = copyURLMod(entry.URL)
		items = append(items, item)
	}
	return items
}

// HistoryFeedback is the direct entry point used by the history subcommand.
func (r *Resolver) HistoryFeedback(filter string) domain.Feedback {
	items := r.historyItems(filter)
	if len(items) == 0 {
		items = []domain.Item{noResultsItem(filter)}
	}
	return domain.Feedback{Items: items}
}
