package domain

// HistoryEntry is one previously opened destination.
type HistoryEntry struct {
	URL   string
	Title string
}

// Matches applies the history search filter (title or URL, case-insensitive).
func (e HistoryEntry) Matches(filter string) bool {
	if filter == "" {
		return true
	}
	return containsFold(e.Title, filter) || containsFold(e.URL, filter)
}
