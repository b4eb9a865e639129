package repo

import "context"

// FilterRepo is the optional LLM spam classifier consulted after the keyword
// scan misses. A nil FilterRepo means the feature is disabled.
type FilterRepo interface {
	// IsSpam classifies a message text
	IsSpam(ctx context.Context, text string) (bool, error)
}
