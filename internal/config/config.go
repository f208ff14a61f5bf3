// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/kpi-dashboard/internal/dashboard"
	"github.com/iwvelando/kpi-dashboard/internal/series"
	"github.com/iwvelando/kpi-dashboard/pkg/constants"
	"github.com/iwvelando/kpi-dashboard/pkg/datetime"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. KPI_DATA_SEED.
const EnvPrefix = "KPI"

// Configuration holds all configuration for kpi-dashboard.
type Configuration struct {
	Data    DataConfig    `yaml:"data"`
	Window  string        `yaml:"window"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// DataConfig controls the synthetic series.
type DataConfig struct {
	Seed           int64            `yaml:"seed"`
	StartDate      string           `yaml:"startDate"`
	EndDate        string           `yaml:"endDate"`
	Revenue        IntRangeConfig   `yaml:"revenue"`
	Profit         IntRangeConfig   `yaml:"profit"`
	ConversionRate FloatRangeConfig `yaml:"conversionRate"`
}

// IntRangeConfig is a half-open [Min, Max) integer range.
type IntRangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRangeConfig is a half-open [Min, Max) real range.
type FloatRangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, xlsx
	File   string `yaml:"file,omitempty"`   // stdout when empty, except xlsx
}

// Default returns the stock configuration: seed 42 over October 2025 with a
// 30 day window.
func Default() *Configuration {
	bounds := series.DefaultBounds()
	return &Configuration{
		Data: DataConfig{
			Seed:           constants.DefaultSeed,
			StartDate:      constants.DefaultStartDate,
			EndDate:        constants.DefaultEndDate,
			Revenue:        IntRangeConfig{Min: bounds.Revenue.Min, Max: bounds.Revenue.Max},
			Profit:         IntRangeConfig{Min: bounds.Profit.Min, Max: bounds.Profit.Max},
			ConversionRate: FloatRangeConfig{Min: bounds.ConversionRate.Min, Max: bounds.ConversionRate.Max},
		},
		Window: constants.DefaultWindow,
		Output: OutputConfig{Format: constants.OutputFormatPretty},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("data.seed", def.Data.Seed)
	v.SetDefault("data.startDate", def.Data.StartDate)
	v.SetDefault("data.endDate", def.Data.EndDate)
	v.SetDefault("data.revenue.min", def.Data.Revenue.Min)
	v.SetDefault("data.revenue.max", def.Data.Revenue.Max)
	v.SetDefault("data.profit.min", def.Data.Profit.Min)
	v.SetDefault("data.profit.max", def.Data.Profit.Max)
	v.SetDefault("data.conversionRate.min", def.Data.ConversionRate.Min)
	v.SetDefault("data.conversionRate.max", def.Data.ConversionRate.Max)
	v.SetDefault("window", def.Window)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.file", "")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Bounds converts the configured ranges.
func (c *Configuration) Bounds() series.Bounds {
	return series.Bounds{
		Revenue:        series.IntRange{Min: c.Data.Revenue.Min, Max: c.Data.Revenue.Max},
		Profit:         series.IntRange{Min: c.Data.Profit.Min, Max: c.Data.Profit.Max},
		ConversionRate: series.FloatRange{Min: c.Data.ConversionRate.Min, Max: c.Data.ConversionRate.Max},
	}
}

// DashboardRequest resolves dates, bounds and the window selection into a
// pipeline request for the given seed.
func (c *Configuration) DashboardRequest(seed int64) (dashboard.Request, error) {
	start, err := datetime.ParseDate(c.Data.StartDate)
	if err != nil {
		return dashboard.Request{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := datetime.ParseDate(c.Data.EndDate)
	if err != nil {
		return dashboard.Request{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if start.After(end) {
		return dashboard.Request{}, fmt.Errorf("start date %s is after end date %s", c.Data.StartDate, c.Data.EndDate)
	}

	bounds := c.Bounds()
	if err := bounds.Validate(); err != nil {
		return dashboard.Request{}, err
	}

	window, err := series.ParseWindow(c.Window)
	if err != nil {
		return dashboard.Request{}, err
	}

	return dashboard.Request{
		Seed:   seed,
		Window: window,
		Start:  start,
		End:    end,
		Bounds: bounds,
	}, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard errors surface from DashboardRequest.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	start, startErr := datetime.ParseDate(c.Data.StartDate)
	end, endErr := datetime.ParseDate(c.Data.EndDate)
	if startErr != nil || endErr != nil {
		return warnings
	}
	days := datetime.DaysInclusive(start, end)

	if days > 0 && days < 2 {
		warnings = append(warnings, fmt.Sprintf(
			"date range %s to %s has a single day; KPI deltas will be unavailable",
			c.Data.StartDate, c.Data.EndDate))
	}

	if window, err := series.ParseWindow(c.Window); err == nil && !window.All() && window.Days > days && days > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"window %s is longer than the %d day range; the full series will be shown",
			window, days))
	}

	return warnings
}
