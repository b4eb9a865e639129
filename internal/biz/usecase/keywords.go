package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/moderato-bot/moderato/internal/biz/repo"
)

// DefaultKeywordTTL is how long a fetched list stays fresh
const DefaultKeywordTTL = 5 * time.Minute

// KeywordCache owns the blocklist: it fetches raw text from its source,
// parses it, and serves the cached result with TTL-bounded refresh. A failed
// refresh serves the previous content: stale data beats no data. With no
// source configured the list is permanently empty and nothing is enforced.
type KeywordCache struct {
	source repo.KeywordSource
	ttl    time.Duration
	now    func() time.Time

	// mu guards the pair below. It is never held across a fetch, so two
	// concurrent refreshes may both fetch and both write; the outcome is
	// whichever list lands last, whole.
	mu        sync.Mutex
	list      []string
	fetchedAt time.Time
}

// NewKeywordCache creates a cache over the given source. A zero ttl selects
// the default.
func NewKeywordCache(source repo.KeywordSource, ttl time.Duration) *KeywordCache {
	if ttl <= 0 {
		ttl = DefaultKeywordTTL
	}
	return &KeywordCache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
}

// ActiveList returns the current keyword list, refreshing it from the source
// when the cached copy is empty or older than the TTL. Content changes never
// force a refresh; only age does.
func (c *KeywordCache) ActiveList(ctx context.Context) []string {
	if c.source == nil {
		return nil
	}

	c.mu.Lock()
	cached := c.list
	fresh := len(cached) > 0 && c.now().Sub(c.fetchedAt) < c.ttl
	c.mu.Unlock()

	if fresh {
		return cached
	}

	raw, err := c.source.Fetch(ctx)
	if err != nil {
		fmt.Printf("[Keywords] Refresh failed, serving cached list (%d entries): %v\n", len(cached), err)
		return cached
	}

	list := ParseKeywordList(raw)

	c.mu.Lock()
	c.list = list
	c.fetchedAt = c.now()
	c.mu.Unlock()

	fmt.Printf("[Keywords] List refreshed: %d entries\n", len(list))
	return list
}

// ParseKeywordList splits raw list text into entries: one per line, trimmed,
// with blank lines and #-comments dropped. Order is preserved; it decides
// which entry gets reported when several match.
func ParseKeywordList(raw string) []string {
	var list []string
	for _, line := range strings.Split(raw, "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		list = append(list, entry)
	}
	return list
}

// MatchKeyword scans the list in stored order and returns the first entry
// contained in the text, case-insensitively.
func MatchKeyword(list []string, text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, entry := range list {
		if strings.Contains(lower, strings.ToLower(entry)) {
			return entry, true
		}
	}
	return "", false
}
