package domain

import "strings"

// Stage identifies which step of the staged query the user is on.
type Stage int

const (
	// StageKind means the user is still picking a resource kind.
	StageKind Stage = iota
	// StageProfile means a kind is complete and a profile is being picked.
	StageProfile
	// StageSearch means kind and profile are present and the tail filters results.
	StageSearch
)

// ParsedQuery is the outcome of tokenizing a raw launcher query.
//
// A trailing space in the raw query marks the current token as complete and
// advances the stage, so "ec2" and "ec2 " parse differently.
type ParsedQuery struct {
	Stage   Stage
	Partial string // partial kind token, StageKind only
	Kind    string
	Profile string
	Filter  string
}

// ParseQuery derives the stage purely from the token count and whether the
// raw query ends in whitespace.
func ParseQuery(raw string) ParsedQuery {
	tokens := strings.Fields(raw)
	trailing := strings.HasSuffix(raw, " ")

	switch {
	case len(tokens) == 0:
		return ParsedQuery{Stage: StageKind}
	case len(tokens) == 1 && !trailing:
		return ParsedQuery{Stage: StageKind, Partial: tokens[0]}
	case len(tokens) == 1:
		return ParsedQuery{Stage: StageProfile, Kind: tokens[0]}
	default:
		return ParsedQuery{
			Stage:   StageSearch,
			Kind:    tokens[0],
			Profile: tokens[1],
			Filter:  strings.Join(tokens[2:], " "),
		}
	}
}
