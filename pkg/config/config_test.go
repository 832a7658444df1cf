package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const validYAML = `
dart:
  api_key: test-key
telegram:
  bot_token: bot-token
  chat_id: "12345"
`

func TestLoadWithEnvDefaults(t *testing.T) {
	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	require.NoError(t, err)

	require.Equal(t, 1, cfg.Monitor.DaysBack)
	require.Equal(t, 100, cfg.Monitor.PageSize)
	require.Equal(t, 10, cfg.Monitor.MaxPages)
	require.Equal(t, "https://opendart.fss.or.kr/api", cfg.Dart.BaseURL)
	require.Equal(t, "memory", cfg.Dedup.Backend)
	require.Equal(t, "file", cfg.Archive.Backend)
}

func TestLoadWithEnvMissingDartKeyFails(t *testing.T) {
	t.Setenv("DART_API_KEY", "")
	_, err := LoadWithEnv(writeConfig(t, `
telegram:
  bot_token: bot-token
  chat_id: "12345"
`))
	require.Error(t, err)
}

func TestLoadWithEnvMissingTelegramFails(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	_, err := LoadWithEnv(writeConfig(t, `
dart:
  api_key: test-key
`))
	require.Error(t, err)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("DART_API_KEY", "env-key")
	t.Setenv("TELEGRAM_CHAT_ID", "99999")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	require.NoError(t, err)
	require.Equal(t, "env-key", cfg.Dart.APIKey)
	require.Equal(t, "99999", cfg.Telegram.ChatID)
}

func TestValidateRejectsUnknownBackends(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	cfg.Dedup.Backend = "dynamo"
	require.Error(t, cfg.Validate())

	cfg.Dedup.Backend = "memory"
	cfg.Archive.Backend = "s3"
	require.Error(t, cfg.Validate())
}

func TestValidateKafkaBackendNeedsBrokers(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	cfg.Archive.Backend = "kafka"
	require.Error(t, cfg.Validate())

	cfg.Archive.Kafka.Brokers = []string{"localhost:9092"}
	require.NoError(t, cfg.Validate())
}
