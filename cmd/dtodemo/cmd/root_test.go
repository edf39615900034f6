package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

var settingKeys = []string{
	"APP_NAME", "ENVIRONMENT", "DEBUG", "HOST", "PORT", "DATABASE_URL",
	"API_KEY", "SECRET_KEY", "MAX_CONNECTIONS", "TIMEOUT", "LOG_LEVEL",
}

func clearSettings(t *testing.T) {
	t.Helper()
	for _, key := range settingKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	clearSettings(t)

	cfg, err := loadConfig("testdata/demo.env", "")
	require.NoError(t, err)
	assert.Equal(t, "dtodemo", cfg.AppName)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 8000, cfg.Port)

	_, err = loadConfig("testdata/invalid.env", "")
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	assert.True(t, verrs.Has("database_url"))
	assert.True(t, verrs.Has("secret_key"))
}

func TestRootCommand(t *testing.T) {
	clearSettings(t)

	t.Run("logs entities and a localized failure", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs([]string{"--env", "testdata/demo.env", "--lang", "es-MX"})

		require.NoError(t, rootCmd.Execute())

		logs := out.String()
		assert.Contains(t, logs, `"msg":"Order created"`)
		assert.Contains(t, logs, `"total":2089.95`)
		assert.Contains(t, logs, `"item_count":5`)
		assert.Contains(t, logs, "debe ser menor o igual que 90")
		assert.NotContains(t, logs, "demo-api-key")
		assert.NotContains(t, logs, "SecurePass123!")
	})

	t.Run("env and yaml are exclusive", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs([]string{"--env", "testdata/demo.env", "--yaml", "config.yaml"})

		assert.Error(t, rootCmd.Execute())
	})
}
