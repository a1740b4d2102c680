package reporter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/phishscan/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkedAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func utcOptions() Options {
	return Options{Location: time.UTC, GeneratedAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)}
}

func exampleResult() models.ScanResult {
	var features models.FeatureMap
	features.Set("has_ip", false)
	features.Set("url_length", int64(19))
	return models.ScanResult{
		URL:        "https://example.com",
		Confidence: 0.92,
		Features:   features,
		CheckedAt:  checkedAt,
	}
}

func TestToTabular_SafeResultRow(t *testing.T) {
	out, err := ToTabular([]models.ScanResult{exampleResult()}, utcOptions())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "URL,Result,Confidence,Date Checked", lines[0])
	assert.Equal(t, "https://example.com,Safe,92.0%,2024-01-15 10:30:00", lines[1])
}

func TestWriteTabular_Rows(t *testing.T) {
	items := []models.BulkScanItem{
		{URL: "https://bad-site.net", IsPhishing: true, Confidence: 0.9876, CheckedAt: checkedAt},
		{URL: "https://broken", Error: "Invalid URL format"},
		{URL: "https://good-site.org", Confidence: 0.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTabular(&buf, items, utcOptions()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		TabularHeader,
		{"https://bad-site.net", "Phishing", "98.8%", "2024-01-15 10:30:00"},
		{"https://broken", "Error", "", ""},
		{"https://good-site.org", "Safe", "50.0%", ""},
	}, records)
}

func TestWriteTabular_QuotesDelimiters(t *testing.T) {
	items := []models.BulkScanItem{{URL: `https://a.com/x,y?q="z"`, Confidence: 0.1}}

	var buf bytes.Buffer
	require.NoError(t, WriteTabular(&buf, items, utcOptions()))

	assert.Contains(t, buf.String(), `"https://a.com/x,y?q=""z"""`)

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Len(t, records[1], 4)
	assert.Equal(t, `https://a.com/x,y?q="z"`, records[1][0])
}

func TestWriteTabular_TimeLayoutAndZone(t *testing.T) {
	zone := time.FixedZone("UTC+7", 7*3600)
	opts := Options{TimeLayout: time.RFC3339, Location: zone}

	var buf bytes.Buffer
	require.NoError(t, WriteTabular(&buf, []models.BulkScanItem{{URL: "https://a.com", CheckedAt: checkedAt}}, opts))

	assert.Contains(t, buf.String(), "2024-01-15T17:30:00+07:00")
}

func TestWriteTitledTabular(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTitledTabular(&buf, HistoryExportTitle, models.ItemsFromResults([]models.ScanResult{exampleResult()}), utcOptions()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, HistoryExportTitle, lines[0])
	assert.Equal(t, "Generated on:,2024-02-01 08:00:00", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "URL,Result,Confidence,Date Checked", lines[3])
	assert.Equal(t, "https://example.com,Safe,92.0%,2024-01-15 10:30:00", lines[4])
}

func TestWriteTabular_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTabular(&buf, nil, Options{}))
	assert.Equal(t, "URL,Result,Confidence,Date Checked\n", buf.String())
}

func TestFileName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "phishscan-history-1700000000123.csv", FileName("history", FormatCSV, now))
	assert.Equal(t, "phishscan-report-1700000000123.pdf", FileName("report", FormatPDF, now))
}
