package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

type Config struct {
	Draft struct {
		DraftID         string   `yaml:"draft_id"`
		LeagueID        string   `yaml:"league_id"`
		Season          string   `yaml:"season"`
		ViewerUsername  string   `yaml:"viewer_username"`
		ViewerUserID    string   `yaml:"viewer_user_id"`
		ViewerSlot      int      `yaml:"viewer_slot"`
		Teams           int      `yaml:"teams"`
		Rounds          int      `yaml:"rounds"`
		RosterPositions []string `yaml:"roster_positions"`
		Strategies      []string `yaml:"strategies"`
	} `yaml:"draft"`

	Board struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"board"`

	Sync struct {
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"sync"`

	Archive struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"archive"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func loadConfig(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// applyEnvOverrides lets the env vars win over the yaml file.
func (c *Config) applyEnvOverrides() {
	c.Draft.DraftID = getEnv("DRAFT_ID", c.Draft.DraftID)
	c.Draft.LeagueID = getEnv("LEAGUE_ID", c.Draft.LeagueID)
	c.Draft.Season = getEnv("SEASON", c.Draft.Season)
	c.Draft.ViewerUsername = getEnv("VIEWER_USERNAME", c.Draft.ViewerUsername)
	c.Draft.ViewerUserID = getEnv("VIEWER_USER_ID", c.Draft.ViewerUserID)
	c.Board.CSVPath = getEnv("BOARD_CSV", c.Board.CSVPath)
	c.Sync.IntervalSeconds = getEnvAsInt("SYNC_INTERVAL_SECONDS", c.Sync.IntervalSeconds)
}

// strategies parses the configured strategy toggles.
func (c *Config) strategies() map[models.Strategy]bool {
	out := map[models.Strategy]bool{}
	for _, raw := range c.Draft.Strategies {
		s := models.Strategy(raw)
		if _, known := models.StrategyLabels[s]; known {
			out[s] = true
		}
	}
	return out
}
