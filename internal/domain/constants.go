package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the default permission for cache and history files (rw-r--r--)
	FilePermissions = 0o644
)

// Timeout and duration constants
const (
	// DefaultCacheTTL is how long a cached external payload stays fresh
	DefaultCacheTTL = time.Hour
	// CredentialCheckTimeout bounds the pre-flight identity check
	CredentialCheckTimeout = 5 * time.Second
	// LookupHTTPTimeout bounds dictionary API requests
	LookupHTTPTimeout = 10 * time.Second
)

// Limit constants
const (
	// HistorySearchLimit is the maximum number of unique history entries returned
	HistorySearchLimit = 50
	// IssuePageSize is the page size requested from the issue tracker CLI
	IssuePageSize = 50
)

// DefaultRegion is used when a profile carries no region of its own.
const DefaultRegion = "ap-northeast-1"
