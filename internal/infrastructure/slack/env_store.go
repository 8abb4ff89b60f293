// Package slack loads the static channel table from a dotenv file.
package slack

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

// EnvStore reads `command=TEAM_ID,CHANNEL_ID` pairs from a .env file.
type EnvStore struct {
	path string
}

// NewEnvStore builds a store over the given file.
func NewEnvStore(path string) *EnvStore {
	return &EnvStore{path: path}
}

// Channels implements ports.ChannelSource. Values without the comma
// separator are skipped rather than treated as corruption.
func (s *EnvStore) Channels() (map[string]domain.Channel, error) {
	values, err := godotenv.Read(s.path)
	if err != nil {
		return nil, fmt.Errorf("read channel table %s: %w", s.path, err)
	}
	channels := make(map[string]domain.Channel, len(values))
	for command, value := range values {
		team, channel, ok := strings.Cut(value, ",")
		if !ok {
			continue
		}
		channels[command] = domain.Channel{
			TeamID:    strings.TrimSpace(team),
			ChannelID: strings.TrimSpace(channel),
		}
	}
	return channels, nil
}

// Path returns the backing file path.
func (s *EnvStore) Path() string { return s.path }

var _ ports.ChannelSource = (*EnvStore)(nil)
