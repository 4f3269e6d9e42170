package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "whisper_workspace", config.WorkDir)
	assert.Equal(t, "mp3", config.AudioFormat)
	assert.Equal(t, "turbo-4bit", config.ModelSize)
	assert.Equal(t, "auto", config.Language)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"空工作目录", func(c *Config) { c.WorkDir = "" }},
		{"非法音频格式", func(c *Config) { c.AudioFormat = "ogg" }},
		{"非法模型规格", func(c *Config) { c.ModelSize = "huge" }},
		{"空语言代码", func(c *Config) { c.Language = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := NewDefaultConfig()
			tc.modify(config)

			err := config.Validate()
			require.Error(t, err)

			var vErr *ConfigValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "config.json")

	config := NewDefaultConfig()
	config.Language = "ja"
	config.ModelSize = "small"
	require.NoError(t, config.SaveToFile(path))

	loaded := NewDefaultConfig()
	require.NoError(t, loaded.LoadFromFile(path))

	assert.Equal(t, "ja", loaded.Language)
	assert.Equal(t, "small", loaded.ModelSize)
}

func TestLoadInvalidConfig(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"audio_format": "ogg"}`), 0644))

	config := NewDefaultConfig()
	assert.Error(t, config.LoadFromFile(path))
}

func TestUpdateRollback(t *testing.T) {
	config := NewDefaultConfig()

	// 非法更新整体回滚
	err := config.Update(map[string]interface{}{
		"language":     "en",
		"audio_format": "ogg",
	})

	require.Error(t, err)
	assert.Equal(t, "auto", config.Language)
	assert.Equal(t, "mp3", config.AudioFormat)

	// 合法更新生效
	require.NoError(t, config.Update(map[string]interface{}{"language": "en"}))
	assert.Equal(t, "en", config.Language)
}

func TestReset(t *testing.T) {
	config := NewDefaultConfig()
	config.Language = "ja"

	config.Reset()
	assert.Equal(t, "auto", config.Language)
}
