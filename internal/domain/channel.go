package domain

// Channel is one entry of the static channel launcher table.
type Channel struct {
	TeamID    string
	ChannelID string
}

// Complete reports whether the channel carries both identifiers.
func (c Channel) Complete() bool {
	return c.TeamID != "" && c.ChannelID != ""
}
