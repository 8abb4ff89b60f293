package filesystem

import "os"

// UserHomeDir returns the current user's home directory, or "." when it
// cannot be determined.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
