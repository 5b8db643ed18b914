package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "Date;Time;Global_active_power;Global_reactive_power;Voltage;Global_intensity;Sub_metering_1;Sub_metering_2;Sub_metering_3"

func writeDatasetFile(t *testing.T, rows []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "household_power_consumption.txt")
	content := testHeader + "\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFiltered(t *testing.T) {
	targetDates := []string{"1/2/2007", "2/2/2007"}

	tests := []struct {
		name         string
		rows         []string
		wantRetained int
		wantDates    []string
	}{
		{
			name: "retains only target dates",
			rows: []string{
				"31/1/2007;23:59:00;1.0;0.1;241.0;4.0;0.0;0.0;0.0",
				"1/2/2007;00:00:00;0.326;0.128;243.15;1.4;0.0;0.0;0.0",
				"2/2/2007;12:00:00;2.5;0.2;240.0;10.4;1.0;2.0;17.0",
				"3/2/2007;00:00:00;1.1;0.1;242.0;4.4;0.0;0.0;0.0",
			},
			wantRetained: 2,
			wantDates:    []string{"1/2/2007", "2/2/2007"},
		},
		{
			name: "boundary date never retained regardless of position",
			rows: []string{
				"3/2/2007;00:00:00;1.1;0.1;242.0;4.4;0.0;0.0;0.0",
				"1/2/2007;00:01:00;0.326;0.128;243.15;1.4;0.0;0.0;0.0",
				"3/2/2007;00:02:00;1.1;0.1;242.0;4.4;0.0;0.0;0.0",
			},
			wantRetained: 1,
			wantDates:    []string{"1/2/2007"},
		},
		{
			name: "missing markers pass through as raw strings",
			rows: []string{
				"1/2/2007;00:00:00;?;?;?;?;?;?;?",
			},
			wantRetained: 1,
			wantDates:    []string{"1/2/2007"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDatasetFile(t, tt.rows)

			records, stats, err := NewLoader(nil).LoadFiltered(path, targetDates)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRetained, stats.Retained)
			assert.Len(t, records, tt.wantRetained)
			for i, rec := range records {
				assert.Equal(t, tt.wantDates[i], rec.Date)
			}
		})
	}
}

func TestLoadFilteredPreservesFileOrder(t *testing.T) {
	rows := []string{
		"1/2/2007;00:00:00;0.1;0.0;240.0;1.0;0.0;0.0;0.0",
		"1/2/2007;00:01:00;0.2;0.0;240.0;1.0;0.0;0.0;0.0",
		"2/2/2007;00:00:00;0.3;0.0;240.0;1.0;0.0;0.0;0.0",
	}
	path := writeDatasetFile(t, rows)

	records, _, err := NewLoader(nil).LoadFiltered(path, []string{"1/2/2007", "2/2/2007"})
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "00:00:00", records[0].Time)
	assert.Equal(t, "00:01:00", records[1].Time)
	assert.Equal(t, "2/2/2007", records[2].Date)
}

func TestLoadFilteredSkipsShortRows(t *testing.T) {
	rows := []string{
		"1/2/2007;00:00:00;0.1",
		"1/2/2007;00:01:00;0.2;0.0;240.0;1.0;0.0;0.0;0.0",
	}
	path := writeDatasetFile(t, rows)

	records, stats, err := NewLoader(nil).LoadFiltered(path, []string{"1/2/2007"})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Malformed)
	assert.Equal(t, 1, stats.Retained)
	require.Len(t, records, 1)
	assert.Equal(t, "00:01:00", records[0].Time)
}

func TestLoadFilteredRawFieldsUnchanged(t *testing.T) {
	path := writeDatasetFile(t, []string{
		"2/2/2007;13:38:00;4.216;0.418;234.840;18.400;0.000;1.000;17.000",
	})

	records, _, err := NewLoader(nil).LoadFiltered(path, []string{"2/2/2007"})
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "13:38:00", r.Time)
	assert.Equal(t, "4.216", r.GlobalActivePower)
	assert.Equal(t, "0.418", r.GlobalReactivePower)
	assert.Equal(t, "234.840", r.Voltage)
	assert.Equal(t, "18.400", r.GlobalIntensity)
	assert.Equal(t, "0.000", r.SubMetering1)
	assert.Equal(t, "1.000", r.SubMetering2)
	assert.Equal(t, "17.000", r.SubMetering3)
}

func TestLoadFilteredMissingFile(t *testing.T) {
	_, _, err := NewLoader(nil).LoadFiltered(filepath.Join(t.TempDir(), "nope.txt"), []string{"1/2/2007"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open dataset file")
}
