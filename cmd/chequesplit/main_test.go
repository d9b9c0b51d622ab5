package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeRegister(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Cheque register"},
		{},
		{"Date", "Type", "Particulars", "Bank", "Instrument no.", "Instrument date", "Status", "Amount"},
		{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Issued", "Power Co", "MCB", "2002", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "Cleared", 40},
		{time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), "Received", "Acme Traders", "HBL", "1001", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "Cleared", 100},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(dir, "register.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestProcessCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	input := writeRegister(t, dir)

	out, err := run(t, "process", input)
	require.NoError(t, err)
	output := filepath.Join(dir, "register_processed.xlsx")
	assert.Contains(t, out, output)

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Jan", "Summary"}, f.GetSheetList())

	jan, err := f.GetRows("Jan")
	require.NoError(t, err)
	require.Len(t, jan, 6)
	assert.Equal(t, []string{"03-Jan-24", "Received", "Acme Traders", "HBL", "1001", "05-Jan-24", "Cleared", "100"}, jan[1])
	assert.Equal(t, []string{"02-Jan-24", "Issued", "Power Co", "MCB", "2002", "10-Jan-24", "Cleared", "40"}, jan[2])
	assert.Equal(t, []string{"", "", "Net Balance Receivable / (Payable)", "", "", "", "", "60", "0"}, jan[5])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Month", "Total Cheques Received DR", "Total Cheques Paid CR", "Net Balance Receivable / (Payable)", "Total Received Cheques", "Total Issued Cheques", "Net Cheques"},
		{"Jan", "100", "40", "60", "1", "1", "0"},
		{"Total", "100", "40", "60", "1", "1", "0"},
	}, summary)
}

func TestSummaryCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	input := writeRegister(t, dir)

	out, err := run(t, "summary", input)
	require.NoError(t, err)

	var report summaryReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Months, 1)
	assert.Equal(t, "Jan", report.Months[0].Month)
	assert.Equal(t, "60", report.Total.NetAmount)
	assert.Equal(t, 2, report.Stats.RowsRead)
}

func TestProcessCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := run(t, "process", filepath.Join(dir, "missing.xlsx"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to load file"))

	_, err = run(t, "process", writeRegister(t, dir), "--collision", "merge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown month collision policy "merge"`)
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "cheques_processed.xlsx"), defaultOutputPath(filepath.Join("data", "cheques.xls"), "_processed"))
	assert.Equal(t, "cheques-monthly.xlsx", defaultOutputPath("cheques.xlsx", "-monthly"))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir: restoring working directory: %v", err)
		}
	})
}
