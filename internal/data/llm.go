package data

import (
	"context"

	"github.com/moderato-bot/moderato/internal/biz/repo"
	"github.com/moderato-bot/moderato/llmfilter"
)

// llmFilterRepo implements the spam filter repository
type llmFilterRepo struct {
	client *llmfilter.Client
}

// NewLLMFilterRepo creates a classifier-backed filter repository.
// A nil client yields a nil repository, which disables the filter.
func NewLLMFilterRepo(client *llmfilter.Client) repo.FilterRepo {
	if client == nil {
		return nil
	}
	return &llmFilterRepo{client: client}
}

func (r *llmFilterRepo) IsSpam(ctx context.Context, text string) (bool, error) {
	return r.client.IsSpam(ctx, text)
}
