package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"POWER_DATASET_URL", "POWER_DATASET_TARGET_DATES", "POWER_DATASET_FETCHER",
	"POWER_CHART_WIDTH_PX", "POWER_CHART_HEIGHT_PX",
	"POWER_LOGGING_LEVEL", "POWER_LOGGING_OUTPUT", "POWER_LOGGING_FILE_PATH",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, v := range configEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultDatasetURL, cfg.Dataset.URL)
	assert.Equal(t, []string{"1/2/2007", "2/2/2007"}, cfg.Dataset.TargetDates)
	assert.Equal(t, "", cfg.Dataset.Fetcher)

	assert.Equal(t, 480, cfg.Chart.WidthPx)
	assert.Equal(t, 480, cfg.Chart.HeightPx)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, "logs/app.log", cfg.Logging.FilePath)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("POWER_DATASET_URL", "https://example.com/archive.zip")
	t.Setenv("POWER_DATASET_TARGET_DATES", "3/2/2007,4/2/2007")
	t.Setenv("POWER_DATASET_FETCHER", "http")
	t.Setenv("POWER_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/archive.zip", cfg.Dataset.URL)
	assert.Equal(t, []string{"3/2/2007", "4/2/2007"}, cfg.Dataset.TargetDates)
	assert.Equal(t, "http", cfg.Dataset.Fetcher)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid URL", "POWER_DATASET_URL", "not a url"},
		{"chart too small", "POWER_CHART_WIDTH_PX", "10"},
		{"unknown fetcher", "POWER_DATASET_FETCHER", "wget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultDatasetURL, cfg.Dataset.URL)
	assert.Equal(t, []string{"1/2/2007", "2/2/2007"}, cfg.Dataset.TargetDates)
	assert.Equal(t, 480, cfg.Chart.WidthPx)
	assert.Equal(t, 480, cfg.Chart.HeightPx)
	assert.Equal(t, "json", cfg.Logging.Format)
}
