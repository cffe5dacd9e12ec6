package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv unsets every variable Load reads so tests start from a known
// environment regardless of the machine running them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvBotToken, EnvChatID, EnvVersion, EnvRepository, EnvRunID, EnvServerURL} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Version != DefaultVersion {
		t.Errorf("Version = %q, want %q", cfg.Version, DefaultVersion)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want %q", cfg.ServerURL, DefaultServerURL)
	}
	if cfg.BotToken != "" || cfg.ChatID != "" {
		t.Errorf("credentials should default to empty, got token=%q chat=%q", cfg.BotToken, cfg.ChatID)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBotToken, "123:abc")
	t.Setenv(EnvChatID, "-100200300")
	t.Setenv(EnvVersion, "v2.1.0")
	t.Setenv(EnvServerURL, "https://github.example.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.BotToken != "123:abc" {
		t.Errorf("BotToken = %q, want %q", cfg.BotToken, "123:abc")
	}
	if cfg.ChatID != "-100200300" {
		t.Errorf("ChatID = %q, want %q", cfg.ChatID, "-100200300")
	}
	if cfg.Version != "v2.1.0" {
		t.Errorf("Version = %q, want %q", cfg.Version, "v2.1.0")
	}
	if cfg.ServerURL != "https://github.example.com" {
		t.Errorf("ServerURL = %q, want %q", cfg.ServerURL, "https://github.example.com")
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "notify.toml")
	content := `bot_token = "file-token"
chat_id = "file-chat"
version = "file-version"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	// Env set for version only: file should win for the credentials,
	// env should win for version.
	t.Setenv(EnvVersion, "env-version")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.BotToken != "file-token" {
		t.Errorf("BotToken = %q, want %q", cfg.BotToken, "file-token")
	}
	if cfg.ChatID != "file-chat" {
		t.Errorf("ChatID = %q, want %q", cfg.ChatID, "file-chat")
	}
	if cfg.Version != "env-version" {
		t.Errorf("Version = %q, want %q", cfg.Version, "env-version")
	}
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load() with missing file should not error, got: %v", err)
	}
	if cfg.Version != DefaultVersion {
		t.Errorf("Version = %q, want default %q", cfg.Version, DefaultVersion)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "notify.toml")
	if err := os.WriteFile(path, []byte("bot_token = [broken"), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed TOML, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		botToken  string
		chatID    string
		wantError string
	}{
		{
			name:     "both present",
			botToken: "123:abc",
			chatID:   "42",
		},
		{
			name:      "missing bot token",
			chatID:    "42",
			wantError: EnvBotToken,
		},
		{
			name:      "missing chat id",
			botToken:  "123:abc",
			wantError: EnvChatID,
		},
		{
			name:      "both missing",
			wantError: EnvBotToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{BotToken: tt.botToken, ChatID: tt.chatID}
			err := cfg.Validate()
			if tt.wantError == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantError)
			}
		})
	}
}

func TestRunURL(t *testing.T) {
	cfg := &Config{
		ServerURL:  "https://github.com",
		Repository: "Winkmoon/Re-meta-hybrid-mount",
		RunID:      "1234567890",
	}

	want := "https://github.com/Winkmoon/Re-meta-hybrid-mount/actions/runs/1234567890"
	if got := cfg.RunURL(); got != want {
		t.Errorf("RunURL() = %q, want %q", got, want)
	}
}
