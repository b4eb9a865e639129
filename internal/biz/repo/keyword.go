package repo

import "context"

// KeywordSource supplies the raw blocklist text. The two deployment variants
// (inline static text, remote URL) are interchangeable behind this interface.
type KeywordSource interface {
	// Fetch returns the raw list text. For the static variant it never fails.
	Fetch(ctx context.Context) (string, error)
}
