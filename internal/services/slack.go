package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

// ChannelService lists the statically configured chat channels.
type ChannelService struct {
	Source ports.ChannelSource
	Log    zerolog.Logger
}

// List filters the channel table by a case-insensitive substring on the
// command name and renders deep-link items.
func (s *ChannelService) List(query string) domain.Feedback {
	channels, err := s.Source.Channels()
	if err != nil {
		s.Log.Warn().Err(err).Msg("channel table unavailable")
		return domain.Feedback{Items: []domain.Item{domain.NewItem(
			"Channel table unavailable",
			err.Error(),
			"",
			"channel-config-error",
			false,
		)}}
	}

	commands := make([]string, 0, len(channels))
	for command := range channels {
		commands = append(commands, command)
	}
	sort.Strings(commands)

	var items []domain.Item
	for _, command := range commands {
		if query != "" && !strings.Contains(strings.ToLower(command), strings.ToLower(query)) {
			continue
		}
		items = append(items, channelItem(command, channels[command]))
	}
	if len(items) == 0 {
		items = []domain.Item{noResultsItem(query)}
	}
	return domain.Feedback{Items: items}
}

func channelItem(command string, channel domain.Channel) domain.Item {
	if !channel.Complete() {
		return domain.NewItem(
			command,
			"Missing team_id or channel_id in configuration",
			"",
			command,
			false,
		)
	}
	url := fmt.Sprintf("slack://channel?team=%s&id=%s", channel.TeamID, channel.ChannelID)
	item := domain.NewItem(
		command,
		fmt.Sprintf("Open Slack channel (Team: %s, Channel: %s)", truncate(channel.TeamID, 8), truncate(channel.ChannelID, 8)),
		url,
		command,
		true,
	)
	item.Autocomplete = command
	return item
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
