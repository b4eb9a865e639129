package repo

import "context"

// AdminOracle answers "is this user an admin of this chat". The two
// deployment variants (live platform query, static id set) are selected by
// configuration at startup. The live variant queries per invocation and never
// caches, so it always reflects the platform's current state.
type AdminOracle interface {
	IsAdmin(ctx context.Context, chatID, userID int64) (bool, error)
}
