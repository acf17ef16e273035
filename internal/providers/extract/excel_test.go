package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestExcel_Extract_SmallSheet(t *testing.T) {
	data := buildWorkbook(t, "Expenses", [][]any{
		{"Category", "Amount"},
		{"Rent", 1200},
		{"Travel", 340},
	})

	text, err := NewExcel().Extract(data)
	require.NoError(t, err)

	assert.Contains(t, text, "Total Sheets: 1")
	assert.Contains(t, text, "Sheet: Expenses")
	assert.Contains(t, text, "Rows: 2")
	assert.Contains(t, text, "Columns: 2")
	assert.Contains(t, text, "1. Category")
	assert.Contains(t, text, "2. Amount")
	assert.Contains(t, text, "All Data:")
	assert.Contains(t, text, "Rent | 1200")
	assert.Contains(t, text, "Travel | 340")
	assert.Contains(t, text, "Column Data Types:")
	assert.Contains(t, text, "Category: text")
	assert.Contains(t, text, "Amount: number")

	// Row order must survive the dump.
	assert.Less(t, strings.Index(text, "Rent"), strings.Index(text, "Travel"))
}

func TestExcel_Extract_LargeSheetIsElided(t *testing.T) {
	rows := [][]any{{"ID", "Value"}}
	for i := 1; i <= 40; i++ {
		rows = append(rows, []any{i, fmt.Sprintf("v%d", i)})
	}
	data := buildWorkbook(t, "Ledger", rows)

	text, err := NewExcel().Extract(data)
	require.NoError(t, err)

	assert.Contains(t, text, "First 20 rows and last 5 rows of 40 total rows")
	assert.Contains(t, text, "1 | v1")
	assert.Contains(t, text, "20 | v20")
	assert.Contains(t, text, "(middle rows omitted for brevity)")
	assert.Contains(t, text, "36 | v36")
	assert.Contains(t, text, "40 | v40")
	assert.NotContains(t, text, "25 | v25")
}

func TestExcel_Extract_EmptySheet(t *testing.T) {
	data := buildWorkbook(t, "Empty", nil)

	text, err := NewExcel().Extract(data)
	require.NoError(t, err)

	assert.Contains(t, text, "Sheet: Empty")
	assert.Contains(t, text, "No data in this sheet")
}

func TestExcel_Extract_CorruptInput(t *testing.T) {
	_, err := NewExcel().Extract([]byte("not a workbook"))
	require.Error(t, err)
}
