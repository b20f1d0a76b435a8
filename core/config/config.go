package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// TelegramConfig holds Telegram bot related settings.
type TelegramConfig struct {
	Token string `yaml:"token" envconfig:"BOT_TOKEN"`
	// AdminIDs is the allowlist of administrator user IDs. Any other sender
	// is treated as an ordinary participant.
	AdminIDs []int64 `yaml:"admin_ids" envconfig:"TELEGRAM_ADMIN_IDS"`
	RunMode  string  `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	KeysOrder   string `yaml:"keys_order"`
	DebugSample string `yaml:"debug_sample"`
	Dir         string `yaml:"dir"`
	BotFile     string `yaml:"bot_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

// StorageConfig selects where the roster document is persisted.
type StorageConfig struct {
	// Driver is "file" (default) or "postgres".
	Driver string `yaml:"driver" envconfig:"STORAGE_DRIVER"`
	// Path is the document file location for the file driver.
	Path string `yaml:"path" envconfig:"STORAGE_PATH"`
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

const (
	// StorageFile persists the roster document as a JSON file.
	StorageFile = "file"
	// StoragePostgres persists the roster document in a single-row Postgres table.
	StoragePostgres = "postgres"
)

const (
	// UpdateCallback identifies callback updates for rate limit exclusions.
	UpdateCallback = "callback"
	// UpdateMessage identifies message updates for rate limit exclusions.
	UpdateMessage = "message"
)

// RateLimitConfig holds settings for rate limiting.
// ExcludeUpdates accepts update types to bypass limiting:
// - "callback": Telegram callback button presses
// - "message": standard text messages
type RateLimitConfig struct {
	IntervalMS     int      `yaml:"interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
	ExcludeUpdates []string `yaml:"exclude_updates" envconfig:"RATE_LIMIT_EXCLUDE_UPDATES"`
}

// Config aggregates the reusable core configuration.
type Config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Logging   LoggingConfig   `yaml:"logging"`
	Storage   StorageConfig   `yaml:"storage"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize performs basic validation of required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required")
	}
	if len(cfg.Telegram.AdminIDs) == 0 {
		return fmt.Errorf("telegram.admin_ids must list at least one administrator")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" {
		rm = RunModeLongpoll
	}
	if rm == "polling" { // accept alias
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook.url is required when telegram.run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			return fmt.Errorf("webhook.listen is required when telegram.run_mode is 'webhook'")
		}
		if cfg.Webhook.Port <= 0 {
			return fmt.Errorf("webhook.port must be > 0 when telegram.run_mode is 'webhook'")
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	driver := strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if driver == "" {
		driver = StorageFile
	}
	switch driver {
	case StorageFile:
		if strings.TrimSpace(cfg.Storage.Path) == "" {
			cfg.Storage.Path = "data.json"
		}
	case StoragePostgres:
	default:
		return fmt.Errorf("invalid storage.driver %q; allowed: file, postgres", cfg.Storage.Driver)
	}
	cfg.Storage.Driver = driver

	allowed := map[string]struct{}{
		UpdateCallback: {},
		UpdateMessage:  {},
	}
	for i, v := range cfg.RateLimit.ExcludeUpdates {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := allowed[key]; !ok {
			return fmt.Errorf("invalid rate_limit.exclude_updates value %q; allowed: callback, message", v)
		}
		cfg.RateLimit.ExcludeUpdates[i] = key
	}
	return nil
}

// IsAdmin reports whether the given user ID belongs to the admin allowlist.
func (t TelegramConfig) IsAdmin(userID int64) bool {
	for _, id := range t.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
