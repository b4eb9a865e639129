package conf

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration
type Config struct {
	// Telegram configuration
	Telegram TelegramConfig

	// Moderation configuration
	Moderation ModerationConfig

	// Filter configuration (optional LLM spam classifier)
	Filter FilterConfig

	// Debug mode
	Debug bool
}

// TelegramConfig contains Telegram and webhook configuration
type TelegramConfig struct {
	Token       string
	ListenAddr  string
	WebhookPath string
}

// ModerationConfig contains moderation behavior configuration
type ModerationConfig struct {
	RequiredChannel  string  // @username or numeric id; empty = no precondition
	VerifyTimeoutMin int     // display-only verification window
	BanDurationSec   int     // temp-ban length on a blocklist hit
	KeywordURL       string  // remote list source
	KeywordList      string  // inline static list source
	KeywordTTLMin    int     // cache freshness window
	AdminIDs         []int64 // static admin set; empty = live query
}

// FilterConfig contains the spam classifier configuration
type FilterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	webhookPath := os.Getenv("WEBHOOK_PATH")
	if webhookPath == "" {
		webhookPath = "/telegram/webhook"
	}

	verifyTimeout := 5
	if val := os.Getenv("VERIFY_TIMEOUT_MINUTES"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			verifyTimeout = parsed
		}
	}

	banDuration := 86400
	if val := os.Getenv("BAN_DURATION_SECONDS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			banDuration = parsed
		}
	}

	keywordTTL := 5
	if val := os.Getenv("KEYWORD_TTL_MINUTES"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			keywordTTL = parsed
		}
	}

	return &Config{
		Telegram: TelegramConfig{
			Token:       os.Getenv("TELEGRAM_BOT_TOKEN"),
			ListenAddr:  listenAddr,
			WebhookPath: webhookPath,
		},
		Moderation: ModerationConfig{
			RequiredChannel:  os.Getenv("REQUIRED_CHANNEL"),
			VerifyTimeoutMin: verifyTimeout,
			BanDurationSec:   banDuration,
			KeywordURL:       os.Getenv("KEYWORD_LIST_URL"),
			KeywordList:      os.Getenv("KEYWORD_LIST"),
			KeywordTTLMin:    keywordTTL,
			AdminIDs:         parseAdminIDs(os.Getenv("ADMIN_IDS")),
		},
		Filter: FilterConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   os.Getenv("SPAM_MODEL"),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}
}

// parseAdminIDs parses a comma-separated id list, dropping malformed entries
func parseAdminIDs(raw string) []int64 {
	if raw == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// BanDuration returns the temp-ban length as a duration
func (c *ModerationConfig) BanDuration() time.Duration {
	return time.Duration(c.BanDurationSec) * time.Second
}

// KeywordTTL returns the cache freshness window as a duration
func (c *ModerationConfig) KeywordTTL() time.Duration {
	return time.Duration(c.KeywordTTLMin) * time.Minute
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return &ConfigError{Field: "TELEGRAM_BOT_TOKEN", Message: "required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
