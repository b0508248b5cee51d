package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingConfig(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Watermarks)
	assert.Empty(t, cfg.Stylesheets)
}

func TestLoadConfigTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[watermarks]
"my guild watermark" = "azorius"
"tolerated mark" = "skip"

[stylesheets.my-frame]
layout = "normal"
frame = "2015"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "azorius", cfg.Watermarks["my guild watermark"])
	assert.Equal(t, "skip", cfg.Watermarks["tolerated mark"])
	assert.Equal(t, Stylesheet{Layout: "normal", Frame: "2015"}, cfg.Stylesheets["my-frame"])
}

func TestLoadMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0644))
	_, err := loadConfigFile(path)
	assert.Error(t, err)
}
