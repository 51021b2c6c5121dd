package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/guidepost/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(TokenEnv, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(TokenEnv, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
database_path = "/var/lib/guidepost"
data_dir = "/srv/data"
language = "fr"

[ai]
model = "openai/gpt-4o"
token = "from-file"
temperature = 0.3
retry_delay = "250ms"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/guidepost", cfg.DatabasePath)
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, "openai/gpt-4o", cfg.AI.Model)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.Host, "unset keys keep defaults")
	assert.Equal(t, "from-file", cfg.AI.Token)

	lang, err := cfg.LanguageCode()
	require.NoError(t, err)
	assert.Equal(t, ai.LanguageFrench, lang)

	aiCfg, err := cfg.AIConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.3, aiCfg.Temperature)
	assert.Equal(t, 250*time.Millisecond, aiCfg.RetryDelay)
	assert.Equal(t, 60*time.Second, aiCfg.Timeout)
	require.NoError(t, aiCfg.Validate())
}

func TestLoad_EnvOverridesToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ai]\ntoken = \"from-file\"\n"), 0600))
	t.Setenv(TokenEnv, "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AI.Token)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir = [unterminated"), 0600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestAIOptions_BadDuration(t *testing.T) {
	cfg := Default()
	cfg.AI.Timeout = "soon"
	_, err := cfg.AIConfig()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(TokenEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.DataDir = "/srv/data"
	cfg.Vocabulary = "/etc/guidepost/vocabulary.yaml"
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
