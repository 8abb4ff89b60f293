package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
)

func newTestResolver(runner *stubRunner, creds stubCredentials, history *stubHistory) *Resolver {
	if history == nil {
		history = &stubHistory{}
	}
	return &Resolver{
		Config: testConfig(),
		Registry: &Registry{
			Cache:  &passthroughCache{},
			Runner: runner,
			SSO:    stubSSO{},
			Log:    zerolog.Nop(),
		},
		Credentials: creds,
		Regions:     stubRegions{region: "ap-northeast-1"},
		History:     history,
		SSO:         stubSSO{},
		Log:         zerolog.Nop(),
	}
}

func TestResolveEmptyQueryListsKinds(t *testing.T) {
	r := newTestResolver(&stubRunner{}, stubCredentials{valid: true}, nil)

	fb := r.Resolve(context.Background(), "")
	// ec2, rds and the reserved history kind.
	if len(fb.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(fb.Items))
	}
	for _, item := range fb.Items {
		if item.Valid {
			t.Fatalf("kind prompt %q must not be actionable", item.Title)
		}
		if !strings.HasSuffix(item.Autocomplete, " ") {
			t.Fatalf("autocomplete %q must advance the stage with a trailing space", item.Autocomplete)
		}
	}
}

func TestResolvePartialKindFilters(t *testing.T) {
	r := newTestResolver(&stubRunner{}, stubCredentials{valid: true}, nil)

	fb := r.Resolve(context.Background(), "ec")
	if len(fb.Items) != 1 || fb.Items[0].Autocomplete != "ec2 " {
		t.Fatalf("items = %+v, want single ec2 prompt", fb.Items)
	}
}

func TestResolveCompletedKindListsProfiles(t *testing.T) {
	r := newTestResolver(&stubRunner{}, stubCredentials{valid: true}, nil)

	fb := r.Resolve(context.Background(), "ec2 ")
	if len(fb.Items) != 2 {
		t.Fatalf("got %d items, want 2 profiles", len(fb.Items))
	}
	// Sorted order: dev before prod.
	if fb.Items[0].Autocomplete != "ec2 dev " || fb.Items[1].Autocomplete != "ec2 prod " {
		t.Fatalf("autocompletes = %q, %q", fb.Items[0].Autocomplete, fb.Items[1].Autocomplete)
	}
}

func TestResolveUnknownKindAtProfileStage(t *testing.T) {
	r := newTestResolver(&stubRunner{}, stubCredentials{valid: true}, nil)

	fb := r.Resolve(context.Background(), "nope ")
	if len(fb.Items) != 1 || fb.Items[0].Valid {
		t.Fatalf("items = %+v, want one non-actionable diagnostic", fb.Items)
	}
	if !strings.Contains(fb.Items[0].Subtitle, "nope") {
		t.Fatalf("subtitle = %q, should name the kind", fb.Items[0].Subtitle)
	}
}

func TestResolveKindCheckedBeforeProfile(t *testing.T) {
	// Both kind and profile are bad; the kind diagnostic must win, and the
	// credential checker must never run.
	r := newTestResolver(&stubRunner{}, stubCredentials{valid: false}, nil)

	fb := r.Resolve(context.Background(), "nope alsobad")
	if len(fb.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(fb.Items))
	}
	if fb.Items[0].Title != "Invalid Service" {
		t.Fatalf("title = %q, want the unsupported-kind diagnostic", fb.Items[0].Title)
	}
}

func TestResolveUnknownProfile(t *testing.T) {
	r := newTestResolver(&stubRunner{}, stubCredentials{valid: true}, nil)

	fb := r.Resolve(context.Background(), "ec2 nosuch")
	if len(fb.Items) != 1 || fb.Items[0].Title != "Unknown Profile" {
		t.Fatalf("items = %+v, want unknown-profile diagnostic", fb.Items)
	}
}

func TestResolveInvalidCredentialsShortCircuitsListing(t *testing.T) {
	runner := &stubRunner{payload: []byte(ec2Payload)}
	r := newTestResolver(runner, stubCredentials{valid: false}, nil)

	fb := r.Resolve(context.Background(), "ec2 prod")
	if len(fb.Items) != 1 {
		t.Fatalf("got %d items, want one remediation item", len(fb.Items))
	}
	if !fb.Items[0].Valid || !strings.HasPrefix(fb.Items[0].Arg, "aws sso login --profile prod") {
		t.Fatalf("item = %+v, want actionable login remediation", fb.Items[0])
	}
	if len(runner.calls) != 0 {
		t.Fatalf("listing ran %d times, want 0 when credentials are known-bad", len(runner.calls))
	}
}

func TestResolveSearchDelegatesToRegistry(t *testing.T) {
	runner := &stubRunner{payload: []byte(ec2Payload)}
	r := newTestResolver(runner, stubCredentials{valid: true}, nil)

	fb := r.Resolve(context.Background(), "ec2 prod i-0aaa")
	if len(fb.Items) != 1 || fb.Items[0].UID != "i-0aaa" {
		t.Fatalf("items = %+v, want the filtered instance", fb.Items)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("listing ran %d times, want 1", len(runner.calls))
	}
	argv := strings.Join(runner.calls[0], " ")
	if !strings.Contains(argv, "--profile prod") || !strings.Contains(argv, "--region ap-northeast-1") {
		t.Fatalf("argv = %q, want profile and region flags", argv)
	}
}

func TestResolveEmptyListingSubstitutesNoResults(t *testing.T) {
	r := newTestResolver(&stubRunner{payload: []byte(`[]`)}, stubCredentials{valid: true}, nil)

	fb := r.Resolve(context.Background(), "ec2 prod")
	if len(fb.Items) != 1 {
		t.Fatalf("got %d items, want exactly one placeholder", len(fb.Items))
	}
	if fb.Items[0].Valid || fb.Items[0].Title != "No Results" {
		t.Fatalf("item = %+v, want non-actionable no-results placeholder", fb.Items[0])
	}
}

func TestResolveHistoryKindBypassesCredentials(t *testing.T) {
	runner := &stubRunner{}
	history := &stubHistory{entries: []domain.HistoryEntry{
		{URL: "https://console.aws.amazon.com/a", Title: "Instance A"},
		{URL: "https://example.com/b", Title: "Dashboard B"},
	}}
	r := newTestResolver(runner, stubCredentials{valid: false}, history)

	fb := r.Resolve(context.Background(), "history dashboard")
	if len(fb.Items) != 1 {
		t.Fatalf("got %d items, want 1 filtered history entry", len(fb.Items))
	}
	if fb.Items[0].Title != "Dashboard B" || !fb.Items[0].Valid {
		t.Fatalf("item = %+v, want actionable history entry", fb.Items[0])
	}
	if len(runner.calls) != 0 {
		t.Fatal("history kind must not invoke any external command")
	}
}

func TestResolveHistoryKindWithTrailingSpaceListsAll(t *testing.T) {
	history := &stubHistory{entries: []domain.HistoryEntry{
		{URL: "https://example.com/a", Title: "A"},
		{URL: "https://example.com/b", Title: "B"},
	}}
	r := newTestResolver(&stubRunner{}, stubCredentials{valid: false}, history)

	fb := r.Resolve(context.Background(), "history ")
	if len(fb.Items) != 2 {
		t.Fatalf("got %d items, want all history entries", len(fb.Items))
	}
}

func TestResolvePartialHistoryTokenStaysAtKindStage(t *testing.T) {
	r := newTestResolver(&stubRunner{}, stubCredentials{valid: true}, nil)

	fb := r.Resolve(context.Background(), "hist")
	if len(fb.Items) != 1 || fb.Items[0].Autocomplete != "history " {
		t.Fatalf("items = %+v, want the history kind prompt", fb.Items)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	r := newTestResolver(&stubRunner{payload: []byte(ec2Payload)}, stubCredentials{valid: true}, nil)

	first := r.Resolve(context.Background(), "ec2 prod")
	second := r.Resolve(context.Background(), "ec2 prod")
	if len(first.Items) != len(second.Items) {
		t.Fatalf("item counts differ: %d vs %d", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		a, b := first.Items[i], second.Items[i]
		if a.UID != b.UID || a.Title != b.Title || a.Subtitle != b.Subtitle || a.Arg != b.Arg {
			t.Fatalf("item %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}
