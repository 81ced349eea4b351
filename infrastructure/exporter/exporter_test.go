package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Name:   "top_campaigns_by_ctr",
		Header: []string{"campaign_id", "campaign_name", "ctr"},
		Rows: [][]interface{}{
			{int64(11), "Campaign_1", 0.1235},
			{int64(12), "Campaign_2", nil},
		},
	}
}

func TestFileWriter_WriteJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	writer := NewFileWriter(dir)

	payload := []map[string]interface{}{
		{"user_id": 1, "spent": decimal.RequireFromString("10.50")},
	}

	path, err := writer.WriteJSON("report.json", payload)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"user_id": 1, "spent": "10.5"}]`, string(data))
}

func TestFileWriter_WriteCSV(t *testing.T) {
	writer := NewFileWriter(t.TempDir())

	path, err := writer.WriteCSV("top.csv", sampleTable())
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"campaign_id", "campaign_name", "ctr"},
		{"11", "Campaign_1", "0.1235"},
		{"12", "Campaign_2", ""},
	}, records)
}

func TestFileWriter_WriteWorkbook(t *testing.T) {
	writer := NewFileWriter(t.TempDir())

	second := Table{
		Name:   "campaigns_near_budget_limit_and_more",
		Header: []string{"campaign_id"},
		Rows:   [][]interface{}{{int64(13)}},
	}

	path, err := writer.WriteWorkbook("report.xlsx", []Table{sampleTable(), second})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"top_campaigns_by_ctr", "campaigns_near_budget_limit_and"}, f.GetSheetList())

	rows, err := f.GetRows("top_campaigns_by_ctr")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"campaign_id", "campaign_name", "ctr"}, rows[0])
	assert.Equal(t, []string{"11", "Campaign_1", "0.1235"}, rows[1])
	assert.Equal(t, "Campaign_2", rows[2][1])
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "device_ctr", SheetName("device_ctr"))
	assert.Len(t, SheetName(strings.Repeat("a", 40)), maxSheetName)
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "nulo", value: nil, want: ""},
		{name: "texto", value: "Kyiv", want: "Kyiv"},
		{name: "inteiro", value: int64(42), want: "42"},
		{name: "decimal float", value: 0.5, want: "0.5"},
		{name: "decimal", value: decimal.RequireFromString("12.30"), want: "12.3"},
		{name: "horário", value: time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC), want: "2024-10-15T09:00:00Z"},
		{name: "booleano", value: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCell(tt.value))
		})
	}
}
