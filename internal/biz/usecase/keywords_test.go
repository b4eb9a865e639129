package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestParseKeywordList(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"comments and blanks dropped", "# note\n广告\n\n推广", []string{"广告", "推广"}},
		{"entries trimmed", "  spam  \n\t促销\t\n", []string{"spam", "促销"}},
		{"order preserved", "b\na\nc", []string{"b", "a", "c"}},
		{"windows line endings", "spam\r\nscam\r\n", []string{"spam", "scam"}},
		{"all comments", "# one\n# two", nil},
		{"empty", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseKeywordList(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseKeywordList(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestMatchKeywordFirstHitWins(t *testing.T) {
	list := []string{"广告", "推广"}

	hit, ok := MatchKeyword(list, "买广告位")
	if !ok || hit != "广告" {
		t.Errorf("Expected hit 广告, got %q (ok=%v)", hit, ok)
	}

	// Both entries match; the first in stored order is reported
	hit, ok = MatchKeyword(list, "推广和广告")
	if !ok || hit != "广告" {
		t.Errorf("Expected first-listed hit 广告, got %q (ok=%v)", hit, ok)
	}
}

func TestMatchKeywordCaseInsensitive(t *testing.T) {
	hit, ok := MatchKeyword([]string{"SPAM"}, "this is spam content")
	if !ok || hit != "SPAM" {
		t.Errorf("Expected case-insensitive hit, got %q (ok=%v)", hit, ok)
	}

	if _, ok := MatchKeyword([]string{"spam"}, "clean message"); ok {
		t.Error("Expected no hit")
	}
}

func TestKeywordCacheNoSource(t *testing.T) {
	cache := NewKeywordCache(nil, time.Minute)
	if list := cache.ActiveList(context.Background()); list != nil {
		t.Errorf("Expected nil list without a source, got %v", list)
	}
}

func TestKeywordCacheTTL(t *testing.T) {
	src := &mockKeywordSource{text: "广告\n推广"}
	cache := NewKeywordCache(src, 5*time.Minute)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	if got := cache.ActiveList(context.Background()); !reflect.DeepEqual(got, []string{"广告", "推广"}) {
		t.Fatalf("Unexpected list: %v", got)
	}
	if src.calls != 1 {
		t.Fatalf("Expected 1 fetch, got %d", src.calls)
	}

	// Second call inside the TTL window performs no fetch
	now = now.Add(4 * time.Minute)
	cache.ActiveList(context.Background())
	if src.calls != 1 {
		t.Errorf("Expected no fetch within TTL, got %d", src.calls)
	}

	// Past the window a refresh is attempted
	now = now.Add(2 * time.Minute)
	src.text = "新词"
	if got := cache.ActiveList(context.Background()); !reflect.DeepEqual(got, []string{"新词"}) {
		t.Errorf("Expected refreshed list, got %v", got)
	}
	if src.calls != 2 {
		t.Errorf("Expected 2 fetches, got %d", src.calls)
	}
}

func TestKeywordCacheStaleFallback(t *testing.T) {
	src := &mockKeywordSource{text: "广告"}
	cache := NewKeywordCache(src, time.Minute)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	first := cache.ActiveList(context.Background())
	if !reflect.DeepEqual(first, []string{"广告"}) {
		t.Fatalf("Unexpected list: %v", first)
	}

	// Refresh fails: the previous content is served unchanged
	now = now.Add(2 * time.Minute)
	src.err = errors.New("connection refused")
	if got := cache.ActiveList(context.Background()); !reflect.DeepEqual(got, []string{"广告"}) {
		t.Errorf("Expected stale list on failure, got %v", got)
	}

	// And the failure did not stamp freshness: the next call retries
	calls := src.calls
	cache.ActiveList(context.Background())
	if src.calls != calls+1 {
		t.Errorf("Expected retry after failed refresh, fetches went %d -> %d", calls, src.calls)
	}
}

func TestKeywordCacheFailureBeforeFirstSuccess(t *testing.T) {
	src := &mockKeywordSource{err: errors.New("boom")}
	cache := NewKeywordCache(src, time.Minute)

	if got := cache.ActiveList(context.Background()); got != nil {
		t.Errorf("Expected empty list, got %v", got)
	}
	if src.calls != 1 {
		t.Errorf("Expected a fetch attempt, got %d", src.calls)
	}
}

func TestKeywordCacheEmptyListRefetches(t *testing.T) {
	// An empty cached list is never considered fresh
	src := &mockKeywordSource{text: "# only comments"}
	cache := NewKeywordCache(src, time.Hour)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	cache.ActiveList(context.Background())
	cache.ActiveList(context.Background())
	if src.calls != 2 {
		t.Errorf("Expected refetch while list is empty, got %d fetches", src.calls)
	}
}
