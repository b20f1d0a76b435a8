package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{
			Token:    "123:abc",
			AdminIDs: []int64{1},
		},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q; want longpoll", cfg.Telegram.RunMode)
	}
	if cfg.Storage.Driver != StorageFile || cfg.Storage.Path != "data.json" {
		t.Fatalf("storage defaults not applied: %+v", cfg.Storage)
	}
}

func TestNormalizeRequiresAdmins(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.AdminIDs = nil
	err := Normalize(cfg)
	if err == nil || !strings.Contains(err.Error(), "admin_ids") {
		t.Fatalf("expected admin_ids error, got %v", err)
	}
}

func TestNormalizeWebhookValidation(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "webhook"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook mode without url")
	}

	cfg = validConfig()
	cfg.Telegram.RunMode = "webhook"
	cfg.Webhook.URL = "https://example.com/hook"
	cfg.Webhook.Listen = "0.0.0.0"
	cfg.Webhook.Port = 8443
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize webhook: %v", err)
	}
}

func TestNormalizeRejectsUnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = "redis"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("alias not normalized: %q", cfg.Telegram.RunMode)
	}
}

func TestIsAdmin(t *testing.T) {
	tc := TelegramConfig{AdminIDs: []int64{10, 20}}
	if !tc.IsAdmin(10) || !tc.IsAdmin(20) {
		t.Fatal("allowlisted IDs rejected")
	}
	if tc.IsAdmin(30) {
		t.Fatal("non-admin accepted")
	}
}
