package data

import (
	"context"

	"github.com/moderato-bot/moderato/internal/biz/repo"
)

// liveAdminOracle answers admin checks with a fresh administrator-list query
// per invocation. Nothing is cached: the answer always reflects the
// platform's current state, at the cost of one extra call per command.
type liveAdminOracle struct {
	mod repo.ModerationRepo
}

// NewLiveAdminOracle creates an oracle backed by live platform queries
func NewLiveAdminOracle(mod repo.ModerationRepo) repo.AdminOracle {
	return &liveAdminOracle{mod: mod}
}

func (o *liveAdminOracle) IsAdmin(ctx context.Context, chatID, userID int64) (bool, error) {
	admins, err := o.mod.ChatAdmins(ctx, chatID)
	if err != nil {
		return false, err
	}
	for _, id := range admins {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

// staticAdminOracle answers from a configured id set, ignoring the chat
type staticAdminOracle struct {
	ids map[int64]bool
}

// NewStaticAdminOracle creates an oracle over a fixed admin id list
func NewStaticAdminOracle(ids []int64) repo.AdminOracle {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return &staticAdminOracle{ids: set}
}

func (o *staticAdminOracle) IsAdmin(ctx context.Context, chatID, userID int64) (bool, error) {
	return o.ids[userID], nil
}
