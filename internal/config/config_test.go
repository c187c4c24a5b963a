package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := writeConfig(t, `{
		"data_dir": "/tmp/jobfiller",
		"headless": false,
		"timeout_seconds": 30,
		"verbose": true
	}`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/jobfiller", cfg.DataDir)
	require.NotNil(t, cfg.Headless)
	assert.False(t, *cfg.Headless)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadHeadlessAbsentStaysUnset(t *testing.T) {
	path := writeConfig(t, `{"data_dir": "/tmp/jobfiller"}`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Nil(t, cfg.Headless)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "zero config", cfg: Config{}},
		{name: "sane values", cfg: Config{TimeoutSeconds: 60, DelaySeconds: 5}},
		{name: "timeout too large", cfg: Config{TimeoutSeconds: 601}, wantErr: true},
		{name: "negative delay", cfg: Config{DelaySeconds: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Defaults()

	empty := Config{}
	merged := empty.MergeWithDefaults(defaults)
	assert.Equal(t, defaults.DataDir, merged.DataDir)
	require.NotNil(t, merged.Headless)
	assert.True(t, *merged.Headless)
	assert.Equal(t, defaults.TimeoutSeconds, merged.TimeoutSeconds)
	assert.Equal(t, defaults.DelaySeconds, merged.DelaySeconds)

	headful := false
	custom := Config{DataDir: "/custom", Headless: &headful, TimeoutSeconds: 10}
	merged = custom.MergeWithDefaults(defaults)
	assert.Equal(t, "/custom", merged.DataDir)
	require.NotNil(t, merged.Headless)
	assert.False(t, *merged.Headless, "an explicit false must not be overwritten")
	assert.Equal(t, 10, merged.TimeoutSeconds)
	assert.Equal(t, defaults.DelaySeconds, merged.DelaySeconds)
}

func TestHeadlessDefaultSurvivesMerge(t *testing.T) {
	// The merge a fresh run performs: no config file, zero Config.
	merged := (&Config{}).MergeWithDefaults(Defaults())
	assert.True(t, merged.BrowserHeadless())
}

func TestBrowserHeadless(t *testing.T) {
	off := false
	assert.True(t, (&Config{}).BrowserHeadless())
	assert.False(t, (&Config{Headless: &off}).BrowserHeadless())
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.NotEmpty(t, cfg.DataDir)
	assert.True(t, cfg.BrowserHeadless())
	assert.NoError(t, cfg.Validate())
}
