package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load("test/config.yml")
	require.NoError(t, err)

	assert.False(t, c.LinkEnabled())
	assert.True(t, c.Markdown)
	assert.True(t, c.Inline)
	assert.Equal(t, []ReplaceRule{
		{Regex: `(\d{4})-(\d{2})-(\d{2})`, Rep: "$3/$2/$1"},
	}, c.Replace)
}

func TestLoad_Missing(t *testing.T) {
	c, err := Load("test/nonexistent.yml")
	require.NoError(t, err)
	assert.True(t, c.LinkEnabled(), "link defaults to true")
	assert.False(t, c.Markdown)
	assert.Empty(t, c.Replace)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("test/broken.yml")
	assert.Error(t, err)

	_, err = Load("test/bad-rule.yml")
	assert.ErrorContains(t, err, "missing regex")
}

func TestApplyEnv(t *testing.T) {
	c, err := LoadAll("test/config.yml", "test/override.env")
	require.NoError(t, err)
	assert.True(t, c.LinkEnabled())
	assert.False(t, c.Markdown)

	c, err = LoadAll("test/config.yml", "test/nonexistent.env")
	require.NoError(t, err)
	assert.False(t, c.LinkEnabled())

	_, err = LoadAll("test/config.yml", "test/bad.env")
	assert.ErrorContains(t, err, EnvLink)
}

func TestApplyEnv_Process(t *testing.T) {
	t.Setenv(EnvLink, "false")

	c, err := LoadAll("test/nonexistent.yml", "test/override.env")
	require.NoError(t, err)
	assert.False(t, c.LinkEnabled(), "process environment wins over the dotenv file")
	assert.False(t, c.Markdown)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/custom.yml")
	assert.Equal(t, "/tmp/custom.yml", DefaultConfigPath())

	t.Setenv(EnvConfig, "")
	assert.Contains(t, DefaultConfigPath(), ConfigFile)
	assert.Contains(t, DefaultEnvPath(), EnvFile)
}
