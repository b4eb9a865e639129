package data

import (
	"github.com/moderato-bot/moderato/internal/biz/repo"
	"github.com/moderato-bot/moderato/llmfilter"
	"github.com/moderato-bot/moderato/telegram"
)

// Repositories contains all repositories
type Repositories struct {
	Moderation repo.ModerationRepo
	Keywords   repo.KeywordSource // nil when no source is configured
	Admins     repo.AdminOracle
	Filter     repo.FilterRepo // nil when the LLM filter is not configured
}

// NewRepositories creates all repositories, selecting the keyword-source and
// admin-oracle variants from configuration. A URL takes precedence over an
// inline list; a static admin id list takes precedence over live queries.
func NewRepositories(
	tgClient *telegram.Client,
	llmClient *llmfilter.Client,
	keywordURL string,
	keywordInline string,
	adminIDs []int64,
) *Repositories {
	mod := NewTelegramRepo(tgClient)

	var keywords repo.KeywordSource
	switch {
	case keywordURL != "":
		keywords = NewRemoteKeywordSource(keywordURL)
	case keywordInline != "":
		keywords = NewStaticKeywordSource(keywordInline)
	}

	var admins repo.AdminOracle
	if len(adminIDs) > 0 {
		admins = NewStaticAdminOracle(adminIDs)
	} else {
		admins = NewLiveAdminOracle(mod)
	}

	return &Repositories{
		Moderation: mod,
		Keywords:   keywords,
		Admins:     admins,
		Filter:     NewLLMFilterRepo(llmClient),
	}
}
