package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/doeshing/wf-go/internal/domain"
)

// listingKey is the logical identity of an inventory listing. Equivalent
// requests collapse onto one cache entry regardless of argv details.
func listingKey(kind domain.ResourceKind, profile, region string) string {
	return fmt.Sprintf("%s_%s_%s", kind, profile, region)
}

// hashKey derives a filename-safe key from query-shaped identities.
func hashKey(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
