package llmfilter

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the spam classifier client using an OpenAI-compatible interface
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new classifier client. baseURL may be empty for the
// OpenAI default; model defaults to gpt-4o-mini.
func NewClient(apiKey, baseURL, model string) *Client {
	if model == "" {
		model = "gpt-4o-mini"
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// SpamStrategy is the prompt for classifying group messages. The classifier
// backs up the keyword list, so it only needs to catch what a substring match
// cannot.
const SpamStrategy = `You are a spam filter for a group chat. Classify the message below.

Spam means: unsolicited advertising, promotion channels, contact-me-for-deals
solicitations, gambling or adult service offers, or scam bait. Ordinary
conversation, questions, links shared in discussion, and criticism are NOT spam.

Reply only YES (spam) or NO (not spam).`

// IsSpam classifies a message text
func (c *Client) IsSpam(ctx context.Context, text string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SpamStrategy},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.1, // Low temperature for deterministic responses
		MaxTokens:   5,   // Short response needed for YES/NO
	})
	if err != nil {
		return false, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return false, fmt.Errorf("no response choices")
	}

	answer := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content))
	return strings.HasPrefix(answer, "YES"), nil
}
