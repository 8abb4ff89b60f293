package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

// IssueService searches the issue tracker through the acli CLI.
type IssueService struct {
	Settings domain.JiraSettings
	Cache    ports.CacheStore
	Runner   ports.CommandRunner
	Log      zerolog.Logger
}

type issue struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
		Status  struct {
			Name string `json:"name"`
		} `json:"status"`
	} `json:"fields"`
}

// Search assembles a JQL query from the free-text input and renders the
// matching issues. A `--all` token anywhere in the query loads every page
// instead of the first 50; a leading `me` narrows to the configured user.
func (s *IssueService) Search(ctx context.Context, raw string) domain.Feedback {
	if s.Settings.Username == "" || s.Settings.BaseURL == "" {
		return domain.Feedback{Items: []domain.Item{domain.NewItem(
			"Workflow Configuration Error",
			"Set jira username and base_url in config (or JIRA_USERNAME / JIRA_BASE_URL)",
			"",
			"config-error",
			false,
		)}}
	}

	tokens := strings.Fields(raw)
	paginate := false
	filtered := tokens[:0]
	for _, token := range tokens {
		if token == "--all" {
			paginate = true
			continue
		}
		filtered = append(filtered, token)
	}

	jql := buildJQL(s.Settings, filtered)
	payload, hit, err := s.Cache.Fetch(
		hashKey(fmt.Sprintf("%s_%t", jql, paginate)),
		domain.DefaultCacheTTL,
		func() ([]byte, error) { return s.Runner.Run(ctx, searchArgv(jql, paginate)) },
	)
	if err != nil {
		return domain.Feedback{Items: s.errorItems(err)}
	}
	s.Log.Debug().Str("jql", jql).Bool("cache_hit", hit).Msg("issue search resolved")

	var issues []issue
	if err := json.Unmarshal(payload, &issues); err != nil {
		return domain.Feedback{Items: []domain.Item{domain.NewItem(
			"JSON Decode Error",
			"Failed to parse acli output.",
			"",
			"decode-error",
			false,
		)}}
	}
	if len(issues) == 0 {
		return domain.Feedback{Items: []domain.Item{domain.NewItem(
			"No Results Found",
			"Try adding --all to your search to load all pages.",
			"",
			"no-results",
			false,
		)}}
	}

	prefix := fmt.Sprintf("Loaded %d issues.", len(issues))
	if !paginate && len(issues) >= domain.IssuePageSize {
		prefix += " (use --all to load more)"
	}

	items := make([]domain.Item, 0, len(issues))
	for _, is := range issues {
		summary := is.Fields.Summary
		if summary == "" {
			summary = "No Summary"
		}
		status := is.Fields.Status.Name
		if status == "" {
			status = "No Status"
		}
		url := strings.TrimRight(s.Settings.BaseURL, "/") + "/browse/" + is.Key
		item := domain.NewItem(
			summary,
			fmt.Sprintf("%s | %s | %s", prefix, is.Key, status),
			url,
			is.Key,
			true,
		)
		item.Mods = copyURLMod(url)
		items = append(items, item)
	}
	return domain.Feedback{Items: items}
}

// buildJQL joins the configured project and type clauses with the parsed
// user intent, ordered newest first.
func buildJQL(settings domain.JiraSettings, tokens []string) string {
	clauses := []string{fmt.Sprintf("project = %s", settings.Project)}
	if settings.IssueType != "" {
		clauses = append(clauses, fmt.Sprintf("Type = %s", strconv.Quote(settings.IssueType)))
	}

	terms := tokens
	if len(tokens) > 0 && strings.EqualFold(tokens[0], "me") {
		clauses = append(clauses, fmt.Sprintf("Assignee = '%s'", settings.Username))
		terms = tokens[1:]
	}
	if len(terms) > 0 {
		clauses = append(clauses, fmt.Sprintf("text ~ %s", strconv.Quote(strings.Join(terms, " ")+"*")))
	}
	return strings.Join(clauses, " AND ") + " ORDER BY key DESC"
}

func searchArgv(jql string, paginate bool) []string {
	argv := []string{
		"acli", "jira", "workitem", "search",
		"--jql", jql,
		"--json",
		"--fields", "key,summary,status",
	}
	if paginate {
		return append(argv, "--paginate")
	}
	return append(argv, "--limit", strconv.Itoa(domain.IssuePageSize))
}

func (s *IssueService) errorItems(err error) []domain.Item {
	cerr := Classify(diagnosticOf(err), "")
	if cerr.Class == domain.ClassNotFound {
		return []domain.Item{domain.NewItem(
			"ACLI not found",
			"Atlassian CLI (acli) is not in your PATH.",
			"",
			"acli-not-found",
			false,
		)}
	}
	return []domain.Item{domain.NewItem(
		"ACLI command failed",
		cerr.Message,
		"",
		"acli-error",
		false,
	)}
}
