package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when neither the config file nor the environment
// provides a value.
const (
	DefaultVersion   = "Unknown"
	DefaultServerURL = "https://github.com"
)

// Environment variables consumed by Load. The GITHUB_* variables are
// provided automatically inside GitHub Actions runs.
const (
	EnvBotToken   = "TELEGRAM_BOT_TOKEN"
	EnvChatID     = "TELEGRAM_CHAT_ID"
	EnvVersion    = "META_HYBRID_VERSION"
	EnvRepository = "GITHUB_REPOSITORY"
	EnvRunID      = "GITHUB_RUN_ID"
	EnvServerURL  = "GITHUB_SERVER_URL"
)

// Config holds everything the notifier reads from its environment,
// resolved once at startup.
type Config struct {
	BotToken   string `toml:"bot_token"`
	ChatID     string `toml:"chat_id"`
	Version    string `toml:"version"`
	Repository string `toml:"repository"`
	RunID      string `toml:"run_id"`
	ServerURL  string `toml:"server_url"`
}

// Load builds a Config with precedence defaults < TOML file < environment.
// filePath may be empty; a missing file is not an error so CI runs that
// rely purely on environment variables work unchanged.
func Load(filePath string) (*Config, error) {
	cfg := &Config{
		Version:   DefaultVersion,
		ServerURL: DefaultServerURL,
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
		}
	}

	applyEnv(cfg)

	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Set variables win
// over file values; unset variables leave the existing value alone.
func applyEnv(cfg *Config) {
	overlay := []struct {
		env  string
		dest *string
	}{
		{EnvBotToken, &cfg.BotToken},
		{EnvChatID, &cfg.ChatID},
		{EnvVersion, &cfg.Version},
		{EnvRepository, &cfg.Repository},
		{EnvRunID, &cfg.RunID},
		{EnvServerURL, &cfg.ServerURL},
	}
	for _, o := range overlay {
		if v, ok := os.LookupEnv(o.env); ok && v != "" {
			*o.dest = v
		}
	}
}

// Validate checks that the required credentials are present.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("%s not set", EnvBotToken)
	}
	if c.ChatID == "" {
		return fmt.Errorf("%s not set", EnvChatID)
	}
	return nil
}

// RunURL returns the link back to the workflow run that produced the
// artifact, built the same way GitHub's own notifications build it.
func (c *Config) RunURL() string {
	return fmt.Sprintf("%s/%s/actions/runs/%s", c.ServerURL, c.Repository, c.RunID)
}
