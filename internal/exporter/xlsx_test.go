package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteSummaryXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "summary.xlsx")

	require.NoError(t, NewXLSXWriter(nil).WriteSummaryXLSX(sampleSummaries(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two data rows")

	assert.Equal(t, summaryHeaders, rows[0])
	assert.Equal(t, "1/2/2007", rows[1][0])
	assert.Equal(t, "1440", rows[1][1])
	assert.Equal(t, "2/2/2007", rows[2][0])
}
