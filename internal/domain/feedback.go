package domain

// Item is one selectable row in the launcher's result list.
type Item struct {
	UID          string          `json:"uid,omitempty"`
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	Arg          string          `json:"arg"`
	Valid        bool            `json:"valid"`
	Autocomplete string          `json:"autocomplete,omitempty"`
	Mods         map[string]Mod  `json:"mods,omitempty"`
	Text         *Text           `json:"text,omitempty"`
}

// Mod rebinds an item's action when a modifier key is held.
type Mod struct {
	Valid    bool   `json:"valid"`
	Arg      string `json:"arg"`
	Subtitle string `json:"subtitle"`
}

// Text customizes what copy / large-type show for an item.
type Text struct {
	Copy      string `json:"copy,omitempty"`
	LargeType string `json:"largetype,omitempty"`
}

// Feedback is the document printed to stdout for the launcher.
type Feedback struct {
	Items []Item `json:"items"`
}

// NewItem builds a plain item.
func NewItem(title, subtitle, arg, uid string, valid bool) Item {
	return Item{UID: uid, Title: title, Subtitle: subtitle, Arg: arg, Valid: valid}
}
