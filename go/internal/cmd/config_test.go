package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
draft:
  draft_id: "123"
  viewer_username: "caddyuser"
  strategies: [zero_rb, elite_te, bogus]
board:
  csv_path: rankings.csv
sync:
  interval_seconds: 10
`), 0o644))

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "123", config.Draft.DraftID)
	assert.Equal(t, "rankings.csv", config.Board.CSVPath)
	assert.Equal(t, 10, config.Sync.IntervalSeconds)

	strategies := config.strategies()
	assert.True(t, strategies[models.StrategyZeroRB])
	assert.True(t, strategies[models.StrategyEliteTE])
	assert.Len(t, strategies, 2, "unknown strategies are dropped")
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, config.Draft.DraftID)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DRAFT_ID", "env-draft")
	t.Setenv("SYNC_INTERVAL_SECONDS", "3")

	config := &Config{}
	config.Draft.DraftID = "file-draft"
	config.applyEnvOverrides()

	assert.Equal(t, "env-draft", config.Draft.DraftID)
	assert.Equal(t, 3, config.Sync.IntervalSeconds)
}
