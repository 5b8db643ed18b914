package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultDatasetURL is the archive the acquisition stage downloads when the
// data directory is absent.
const DefaultDatasetURL = "https://d396qusza40orc.cloudfront.net/exdata%2Fdata%2Fhousehold_power_consumption.zip"

// Config represents the complete application configuration
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" envconfig:"DATASET"`
	Chart   ChartConfig   `yaml:"chart" envconfig:"CHART"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// DatasetConfig controls acquisition and filtering of the source data
type DatasetConfig struct {
	URL         string   `yaml:"url" envconfig:"URL" validate:"required,url"`
	TargetDates []string `yaml:"target_dates" envconfig:"TARGET_DATES" validate:"required,min=1,dive,required"`
	// Fetcher selects the download transport: "http", "curl", or "" for the
	// per-platform default.
	Fetcher string `yaml:"fetcher" envconfig:"FETCHER" validate:"omitempty,oneof=http curl"`
}

// ChartConfig controls the rendered image geometry
type ChartConfig struct {
	WidthPx  int `yaml:"width_px" envconfig:"WIDTH_PX" default:"480" validate:"min=64"`
	HeightPx int `yaml:"height_px" envconfig:"HEIGHT_PX" default:"480" validate:"min=64"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// Load loads configuration from environment variables and an optional
// config.yaml. Environment variables (POWER_* prefix) take precedence.
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("POWER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the default configuration without consulting the
// environment. Commands fall back to it when Load fails.
func Default() *Config {
	cfg := &Config{
		Chart: ChartConfig{
			WidthPx:  480,
			HeightPx: 480,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: "logs/app.log",
		},
	}
	cfg.applyDefaults()
	return cfg
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Dataset.URL == "" {
		envConfig.Dataset.URL = fileConfig.Dataset.URL
	}
	if len(envConfig.Dataset.TargetDates) == 0 {
		envConfig.Dataset.TargetDates = fileConfig.Dataset.TargetDates
	}
	if envConfig.Dataset.Fetcher == "" {
		envConfig.Dataset.Fetcher = fileConfig.Dataset.Fetcher
	}
	if envConfig.Chart.WidthPx == 0 {
		envConfig.Chart.WidthPx = fileConfig.Chart.WidthPx
	}
	if envConfig.Chart.HeightPx == 0 {
		envConfig.Chart.HeightPx = fileConfig.Chart.HeightPx
	}
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}

	return envConfig
}

// applyDefaults fills the dataset constants that envconfig default tags cannot
// express cleanly (the URL contains a percent escape that would be mangled).
func (c *Config) applyDefaults() {
	if c.Dataset.URL == "" {
		c.Dataset.URL = DefaultDatasetURL
	}
	if len(c.Dataset.TargetDates) == 0 {
		c.Dataset.TargetDates = []string{"1/2/2007", "2/2/2007"}
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "both"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/app.log"
	}
}

// validate validates the configuration via struct tags
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}

	// Always JSON logs; the pipeline's log files are machine-read.
	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}
