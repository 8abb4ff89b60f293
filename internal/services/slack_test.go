package services

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
)

func newChannelService(source *stubChannels) *ChannelService {
	return &ChannelService{Source: source, Log: zerolog.Nop()}
}

func TestChannelListRendersDeepLinks(t *testing.T) {
	svc := newChannelService(&stubChannels{channels: map[string]domain.Channel{
		"oncall":    {TeamID: "T0AAA", ChannelID: "C0BBB"},
		"incidents": {TeamID: "T0AAA", ChannelID: "C0CCC"},
	}})

	fb := svc.List("")
	if len(fb.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(fb.Items))
	}
	// Sorted by command name.
	if fb.Items[0].Title != "incidents" || fb.Items[1].Title != "oncall" {
		t.Fatalf("order = %q, %q", fb.Items[0].Title, fb.Items[1].Title)
	}
	oncall := fb.Items[1]
	if oncall.Arg != "slack://channel?team=T0AAA&id=C0BBB" {
		t.Fatalf("arg = %q, want slack deep link", oncall.Arg)
	}
	if !oncall.Valid {
		t.Fatal("complete channel must be actionable")
	}
}

func TestChannelListFiltersByCommand(t *testing.T) {
	svc := newChannelService(&stubChannels{channels: map[string]domain.Channel{
		"oncall":    {TeamID: "T0AAA", ChannelID: "C0BBB"},
		"incidents": {TeamID: "T0AAA", ChannelID: "C0CCC"},
	}})

	fb := svc.List("ONC")
	if len(fb.Items) != 1 || fb.Items[0].Title != "oncall" {
		t.Fatalf("items = %+v, want case-insensitive match on oncall", fb.Items)
	}

	fb = svc.List("zzz")
	if len(fb.Items) != 1 || fb.Items[0].Valid {
		t.Fatalf("items = %+v, want a no-results placeholder", fb.Items)
	}
}

func TestChannelListIncompleteEntryIsNotActionable(t *testing.T) {
	svc := newChannelService(&stubChannels{channels: map[string]domain.Channel{
		"broken": {TeamID: "T0AAA"},
	}})

	fb := svc.List("")
	if len(fb.Items) != 1 || fb.Items[0].Valid {
		t.Fatalf("items = %+v, want non-actionable incomplete entry", fb.Items)
	}
	if !strings.Contains(fb.Items[0].Subtitle, "channel_id") {
		t.Fatalf("subtitle = %q, should name the missing field", fb.Items[0].Subtitle)
	}
}

func TestChannelListSourceError(t *testing.T) {
	svc := newChannelService(&stubChannels{err: errTestFailure})

	fb := svc.List("")
	if len(fb.Items) != 1 || fb.Items[0].Valid {
		t.Fatalf("items = %+v, want one non-actionable error item", fb.Items)
	}
	if fb.Items[0].Title != "Channel table unavailable" {
		t.Fatalf("title = %q", fb.Items[0].Title)
	}
}
