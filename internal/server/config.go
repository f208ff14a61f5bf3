package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/kpi-dashboard/internal/config"
	"github.com/iwvelando/kpi-dashboard/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address         string               `yaml:"address"`
	DashboardConfig string               `yaml:"dashboardConfig"`
	InitialSeed     *int64               `yaml:"initialSeed,omitempty"`
	MaxSessions     int                  `yaml:"maxSessions"`
	Logging         config.LoggingConfig `yaml:"logging"`
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:     constants.DefaultServerAddress,
		MaxSessions: constants.DefaultMaxSessions,
		Logging:     config.LoggingConfig{},
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// LoadDashboardConfiguration loads the dashboard config the server points at,
// or the stock defaults when none is set.
func (c *Config) LoadDashboardConfiguration() (*config.Configuration, error) {
	if c.DashboardConfig == "" {
		return config.Default(), nil
	}
	conf, err := config.LoadConfiguration(c.DashboardConfig)
	if err != nil {
		return nil, err
	}
	return conf, nil
}

// Seed returns the seed new sessions start from: the server override if set,
// otherwise the dashboard config seed.
func (c *Config) Seed(conf *config.Configuration) int64 {
	if c.InitialSeed != nil {
		return *c.InitialSeed
	}
	return conf.Data.Seed
}

func (c *Config) normalize() {
	c.Address = strings.TrimSpace(c.Address)
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = constants.DefaultMaxSessions
	}
	c.DashboardConfig = strings.TrimSpace(c.DashboardConfig)
}
