// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends only on these contracts; concrete adapters in
// the infrastructure layer satisfy them (external CLIs, the filesystem cache,
// HTTP APIs). Every error an adapter can produce is recovered at the service
// boundary and turned into a displayable feedback item, never a crash.
package ports

import (
	"context"
	"time"

	"github.com/doeshing/wf-go/internal/domain"
)

// CommandRunner executes an external command and returns its stdout.
// Failures are reported as *domain.InvocationError carrying the tool's
// diagnostic stream and exit code.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) ([]byte, error)
}

// CacheStore fronts expensive external calls with a TTL keyed cache.
//
// Fetch returns the cached payload when the entry for key is younger than
// ttl (ttl <= 0 never expires), otherwise runs fill. Successful fill output
// is persisted under key; fill errors are returned untouched and never
// written, so a transient failure cannot poison the cache.
type CacheStore interface {
	Fetch(key string, ttl time.Duration, fill func() ([]byte, error)) (payload []byte, hit bool, err error)
}

// CacheRepository extends CacheStore with maintenance operations.
type CacheRepository interface {
	CacheStore
	Dir() string
	Entries() ([]domain.CacheInfo, error)
	Clear() error
}

// HistoryStore records confirmed opens and searches them most-recent-first.
type HistoryStore interface {
	Record(entry domain.HistoryEntry) error
	Search(filter string, limit int) ([]domain.HistoryEntry, error)
}

// HistoryRepository extends HistoryStore with maintenance operations.
type HistoryRepository interface {
	HistoryStore
	Path() string
	Clear() error
}

// CredentialChecker is the advisory fast-path session probe. Any failure,
// including a timeout, reads as invalid.
type CredentialChecker interface {
	IsValid(ctx context.Context, profile string) bool
}

// RegionResolver maps a profile to its region, falling back to the
// configured default when the lookup fails.
type RegionResolver interface {
	Region(ctx context.Context, profile string) string
}

// SSOResolver finds a profile's single-sign-on start URL from local
// configuration. Absence is not an error.
type SSOResolver interface {
	StartURL(profile string) (string, bool)
}

// WordSource queries the external dictionary API for one result page.
type WordSource interface {
	Search(ctx context.Context, word string, page int) ([]byte, error)
}

// ChannelSource loads the static channel launcher table.
type ChannelSource interface {
	Channels() (map[string]domain.Channel, error)
}

// Opener hands a destination URL to the platform opener.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// ConfigProvider loads the latest configuration from persistent storage.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}
