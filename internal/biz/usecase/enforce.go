package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/moderato-bot/moderato/internal/biz/domain"
	"github.com/moderato-bot/moderato/internal/biz/repo"
)

// DefaultBanDuration is the temp-ban length applied on a blocklist hit
const DefaultBanDuration = 86400 * time.Second

// FilterTag is the keyword name reported when the LLM classifier, not the
// list, flagged the message
const FilterTag = "llm"

// Enforcer applies the keyword blocklist (and, when configured, the LLM spam
// classifier) to group messages: on a hit the message is deleted, the sender
// temp-banned and a notice posted naming the matched entry.
type Enforcer struct {
	cache       *KeywordCache
	mod         repo.ModerationRepo
	filter      repo.FilterRepo // nil = keyword-only
	banDuration time.Duration
	now         func() time.Time
}

// NewEnforcer creates a new enforcer. A non-positive banDuration selects the
// default.
func NewEnforcer(cache *KeywordCache, mod repo.ModerationRepo, filter repo.FilterRepo, banDuration time.Duration) *Enforcer {
	if banDuration <= 0 {
		banDuration = DefaultBanDuration
	}
	return &Enforcer{
		cache:       cache,
		mod:         mod,
		filter:      filter,
		banDuration: banDuration,
		now:         time.Now,
	}
}

// CheckMessage scans a group text message and punishes on a hit. Messages
// without a resolvable sender are skipped entirely, no partial action.
// Command prefixes are ruled out by the router before this runs.
func (e *Enforcer) CheckMessage(ctx context.Context, msg *domain.Message) {
	if !msg.IsGroup() || msg.Text == "" {
		return
	}
	if msg.Sender == nil {
		return
	}

	hit, found := MatchKeyword(e.cache.ActiveList(ctx), msg.Text)
	if !found && e.filter != nil {
		spam, err := e.filter.IsSpam(ctx, msg.Text)
		if err != nil {
			// Classifier trouble never blocks a message
			fmt.Printf("[Filter] Classify failed in %d: %v\n", msg.ChatID, err)
		} else if spam {
			hit, found = FilterTag, true
		}
	}
	if !found {
		return
	}

	if err := e.mod.DeleteMessage(ctx, msg.ChatID, msg.MessageID); err != nil {
		fmt.Printf("[Keywords] Delete failed for message %d in %d: %v\n", msg.MessageID, msg.ChatID, err)
	}
	until := e.now().Add(e.banDuration)
	if err := e.mod.Ban(ctx, msg.ChatID, msg.Sender.UserID, until); err != nil {
		fmt.Printf("[Keywords] Ban failed for %d in %d: %v\n", msg.Sender.UserID, msg.ChatID, err)
	}
	notice := fmt.Sprintf("%s was banned for posting blocked content (%s).", msg.Sender.FormatDisplay(), hit)
	if err := e.mod.SendText(ctx, msg.ChatID, notice); err != nil {
		fmt.Printf("[Keywords] Notice failed in %d: %v\n", msg.ChatID, err)
	}

	fmt.Printf("[Keywords] Hit %q by %d in %d, message removed\n", hit, msg.Sender.UserID, msg.ChatID)
}
