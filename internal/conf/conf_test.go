package conf

import (
	"reflect"
	"testing"
)

func TestParseAdminIDs(t *testing.T) {
	cases := []struct {
		raw  string
		want []int64
	}{
		{"", nil},
		{"1", []int64{1}},
		{"1,2,3", []int64{1, 2, 3}},
		{" 1 , 2 ", []int64{1, 2}},
		{"1,,2", []int64{1, 2}},
		{"1,abc,2", []int64{1, 2}},
	}
	for _, tc := range cases {
		if got := parseAdminIDs(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseAdminIDs(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	for _, key := range []string{"LISTEN_ADDR", "WEBHOOK_PATH", "BAN_DURATION_SECONDS", "KEYWORD_TTL_MINUTES", "VERIFY_TIMEOUT_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := LoadFromEnv()
	if cfg.Telegram.ListenAddr != ":8080" {
		t.Errorf("Unexpected listen addr: %q", cfg.Telegram.ListenAddr)
	}
	if cfg.Telegram.WebhookPath != "/telegram/webhook" {
		t.Errorf("Unexpected webhook path: %q", cfg.Telegram.WebhookPath)
	}
	if cfg.Moderation.BanDurationSec != 86400 {
		t.Errorf("Unexpected ban duration: %d", cfg.Moderation.BanDurationSec)
	}
	if cfg.Moderation.KeywordTTLMin != 5 || cfg.Moderation.VerifyTimeoutMin != 5 {
		t.Errorf("Unexpected defaults: %+v", cfg.Moderation)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestValidateRequiresToken(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected an error without a token")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("Expected a ConfigError, got %T", err)
	}
}
