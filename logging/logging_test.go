package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orbitview/config"
)

func TestSetupWritesJSONFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "view.log")
	logger, closeFn, err := Setup(config.LogConfig{Level: "debug", File: p, MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Info("mesh loaded", zap.Int("vertices", 42))
	closeFn()

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	var found bool
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == "mesh loaded" {
			found = true
			assert.Equal(t, float64(42), entry["vertices"])
			assert.Equal(t, "info", entry["level"])
		}
	}
	assert.True(t, found)
}

func TestSetupFiltersLevel(t *testing.T) {
	p := filepath.Join(t.TempDir(), "view.log")
	logger, closeFn, err := Setup(config.LogConfig{Level: "warn", File: p})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	closeFn()

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSetupBadLevel(t *testing.T) {
	_, _, err := Setup(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, rootLogger, From(ctx))

	named := zap.NewNop().Named("scene")
	ctx = Context(ctx, named)
	assert.Equal(t, named, From(ctx))

	sub, ctx := SubFrom(ctx, "hud")
	assert.Equal(t, sub, From(ctx))
}
