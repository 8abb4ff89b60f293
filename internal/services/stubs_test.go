package services

import (
	"context"
	"errors"
	"time"

	"github.com/doeshing/wf-go/internal/domain"
)

var errTestFailure = errors.New("stub failure")

// passthroughCache runs the fill function on every fetch and counts calls,
// so tests observe exactly when the external command would run.
type passthroughCache struct {
	fills int
}

func (c *passthroughCache) Fetch(key string, ttl time.Duration, fill func() ([]byte, error)) ([]byte, bool, error) {
	c.fills++
	payload, err := fill()
	return payload, false, err
}

// stubRunner returns a canned payload or error and records invocations.
type stubRunner struct {
	payload []byte
	err     error
	calls   [][]string
}

func (r *stubRunner) Run(ctx context.Context, argv []string) ([]byte, error) {
	r.calls = append(r.calls, argv)
	if r.err != nil {
		return nil, r.err
	}
	return r.payload, nil
}

type stubSSO struct {
	url string
}

func (s stubSSO) StartURL(profile string) (string, bool) {
	return s.url, s.url != ""
}

type stubCredentials struct {
	valid bool
}

func (s stubCredentials) IsValid(context.Context, string) bool { return s.valid }

type stubRegions struct {
	region string
}

func (s stubRegions) Region(context.Context, string) string { return s.region }

type stubHistory struct {
	entries  []domain.HistoryEntry
	recorded []domain.HistoryEntry
	err      error
}

func (s *stubHistory) Record(entry domain.HistoryEntry) error {
	s.recorded = append(s.recorded, entry)
	return s.err
}

func (s *stubHistory) Search(filter string, limit int) ([]domain.HistoryEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.HistoryEntry
	for _, entry := range s.entries {
		if entry.Matches(filter) {
			out = append(out, entry)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// stubWordSource serves fixed payloads per page.
type stubWordSource struct {
	pages map[int][]byte
	calls []int
}

func (s *stubWordSource) Search(ctx context.Context, word string, page int) ([]byte, error) {
	s.calls = append(s.calls, page)
	if payload, ok := s.pages[page]; ok {
		return payload, nil
	}
	return []byte("null"), nil
}

type stubChannels struct {
	channels map[string]domain.Channel
	err      error
}

func (s stubChannels) Channels() (map[string]domain.Channel, error) {
	return s.channels, s.err
}

func testConfig() domain.Config {
	return domain.Config{
		DefaultRegion: "ap-northeast-1",
		Services: map[string]string{
			"ec2": "Elastic Compute Cloud (EC2) instances",
			"rds": "Relational Database Service (RDS) instances",
		},
		Profiles: map[string]string{
			"prod": "Production environment",
			"dev":  "Development environment",
		},
	}
}
