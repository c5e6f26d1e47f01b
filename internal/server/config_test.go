package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/canamort/mortgage-schedule/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultServerAddress, cfg.Address)
	assert.Equal(t, constants.DefaultMaxBodySizeBytes, cfg.BodySizeBytes())
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultServerAddress, cfg.Address)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	contents := "address: \":9090\"\nmaxBodySize: 1M\nredisAddress: localhost:6379\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, int64(1024*1024), cfg.BodySizeBytes())
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		value    string
		expected int64
		wantErr  bool
	}{
		{"1024", 1024, false},
		{"256K", 256 * 1024, false},
		{"10MB", 10 * 1024 * 1024, false},
		{"1G", 1024 * 1024 * 1024, false},
		{" 2 K ", 2 * 1024, false},
		{"", constants.DefaultMaxBodySizeBytes, false},
		{"abc", 0, true},
		{"10T", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseSize(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
