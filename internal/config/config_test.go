package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("APP_AI_API_KEY", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultDatabaseDriver, cfg.Database.Driver)
	assert.Equal(t, DefaultAITimeout, cfg.AI.Timeout)
	assert.Equal(t, DefaultOrderMaxTokens, cfg.AI.OrderMaxTokens)
	assert.Equal(t, DefaultHintMaxTokens, cfg.AI.HintMaxTokens)
	assert.Equal(t, DefaultExplainMaxTokens, cfg.AI.ExplainMaxTokens)
	assert.Equal(t, DefaultFrontMaxLen, cfg.App.FrontMaxLen)
	assert.Equal(t, DefaultAIModel, cfg.AI.Model)
	assert.Equal(t, DefaultAIEndpoint, cfg.AI.Endpoint)
	assert.Equal(t, DefaultAIAPIVersion, cfg.AI.APIVersion)
	assert.False(t, cfg.Auth.Enabled)
	assert.NotEmpty(t, cfg.CORS.AllowedMethods)
	assert.Equal(t, []string{"/api/v1/ai/"}, cfg.Log.RedactPaths)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: ":9000"
database:
  driver: sqlite
  url: "file:test.db"
ai:
  timeout: 2s
  order_max_tokens: 0
app:
  front_max_len: 40
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	t.Setenv("APP_SERVER_PORT", ":9100")
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("AUTH_ENABLED", "true")

	cfg, err := Load(dir)
	require.NoError(t, err)

	// 環境変数が設定ファイルより優先される
	assert.Equal(t, ":9100", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:test.db", cfg.Database.URL)
	assert.Equal(t, 2*time.Second, cfg.AI.Timeout)
	assert.Equal(t, DefaultOrderMaxTokens, cfg.AI.OrderMaxTokens, "0 は既定値へ戻す")
	assert.Equal(t, 40, cfg.App.FrontMaxLen)
	assert.Equal(t, "from-env", cfg.AI.APIKey)
	assert.True(t, cfg.Auth.Enabled)
}

func TestLoad_BrokenYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}
