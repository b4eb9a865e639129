package data

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/moderato-bot/moderato/internal/biz/repo"
)

// staticKeywordSource serves a pre-supplied inline list
type staticKeywordSource struct {
	text string
}

// NewStaticKeywordSource creates a source over inline list text
func NewStaticKeywordSource(text string) repo.KeywordSource {
	return &staticKeywordSource{text: text}
}

func (s *staticKeywordSource) Fetch(ctx context.Context) (string, error) {
	return s.text, nil
}

// remoteKeywordSource fetches the list text from a URL. One GET per fetch,
// no retries; a non-2xx status counts as a fetch failure.
type remoteKeywordSource struct {
	url    string
	client *http.Client
}

// NewRemoteKeywordSource creates a source over a remote URL
func NewRemoteKeywordSource(url string) repo.KeywordSource {
	return &remoteKeywordSource{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *remoteKeywordSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("build keyword request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch keyword list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch keyword list: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read keyword list: %w", err)
	}
	return string(body), nil
}
