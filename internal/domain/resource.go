package domain

import "strings"

// ResourceKind names one category of external inventory item.
type ResourceKind string

// Known resource kinds. The adapter table is fixed at process start.
const (
	KindEC2     ResourceKind = "ec2"
	KindRDS     ResourceKind = "rds"
	KindLambda  ResourceKind = "lambda"
	KindDynamo  ResourceKind = "dynamo"
	KindSFN     ResourceKind = "sfn"
	KindSecret  ResourceKind = "secret"
	KindHistory ResourceKind = "history" // reserved, bypasses profiles
)

// ResultRecord is the normalized projection of one external record.
type ResultRecord struct {
	ID     string
	Name   string
	Detail string
}

// DisplayName prefers the record name and falls back to its identifier.
func (r ResultRecord) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// Matches reports whether the record survives a free-text filter.
// Matching is case-insensitive substring against name or id; an empty
// filter matches everything.
func (r ResultRecord) Matches(filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.ID), needle)
}
