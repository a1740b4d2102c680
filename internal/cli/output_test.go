package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, models.ScanResult{
		URL:        "https://example.com",
		Confidence: 0.92,
		Features: models.FeatureMap{
			{Name: "has_ip_address", Value: false},
			{Name: "url_length", Value: float64(19)},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "https://example.com\n")
	assert.Contains(t, out, "92.0% confidence")
	assert.Contains(t, out, "Has Ip Address")
	assert.Contains(t, out, "No")
	assert.Contains(t, out, "19")
}

func TestPrintResult_NoFeatures(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, models.ScanResult{URL: "https://bad.example", IsPhishing: true, Confidence: 0.5})

	assert.NotContains(t, buf.String(), "Details:")
	assert.Contains(t, buf.String(), "50.0%")
}

func TestPrintEnrichment(t *testing.T) {
	status := 200
	tests := []struct {
		name    string
		info    *models.EnrichmentInfo
		loading bool
		want    []string
		empty   bool
	}{
		{name: "loading", loading: true, want: []string{"fetching website information"}},
		{name: "nothing yet", empty: true},
		{
			name: "failed",
			info: &models.EnrichmentInfo{Domain: "example.com", Error: common.MsgEnrichFailed},
			want: []string{"example.com: " + common.MsgEnrichFailed},
		},
		{
			name: "full",
			info: &models.EnrichmentInfo{
				Domain:      "example.com",
				Title:       strPtr("Example Domain"),
				Description: strPtr("For use in examples"),
				ContentType: strPtr("text/html"),
				HTTPStatus:  &status,
			},
			want: []string{`example.com | "Example Domain" | HTTP 200 | text/html`, "For use in examples"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printEnrichment(&buf, tt.info, tt.loading)
			if tt.empty {
				assert.Empty(t, buf.String())
				return
			}
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestPrintItems(t *testing.T) {
	var buf bytes.Buffer
	printItems(&buf, []models.BulkScanItem{
		{URL: "https://example.com", Confidence: 0.9},
		{URL: "not a url", Error: "Invalid URL format"},
	})

	out := buf.String()
	assert.Contains(t, out, "URL")
	assert.Contains(t, out, "90.0%")
	assert.Contains(t, out, "Invalid URL format")
	assert.Contains(t, out, models.LabelError)
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	assert.Equal(t, "No scans match.\n", buf.String())
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	checked := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	printHistory(&buf, []models.ScanResult{{URL: "https://example.com", Confidence: 0.92, CheckedAt: checked}})

	assert.Contains(t, buf.String(), "2024-01-15 10:30")
	assert.Contains(t, buf.String(), models.LabelSafe)
}

func TestFormatLocal_Zero(t *testing.T) {
	assert.Equal(t, "N/A", formatLocal(time.Time{}))
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "no session", err: common.ErrNoSession, want: common.MsgLoginRequired + ` (run "phishscan login")`},
		{name: "expired token", err: common.NewAPIError(http.StatusUnauthorized, "Token has expired"), want: `Token has expired (run "phishscan login")`},
		{name: "backend message", err: common.WrapError(common.NewAPIError(http.StatusBadRequest, "Invalid URL format"), "predict"), want: "Invalid URL format"},
		{name: "invalid url", err: common.ErrInvalidURL, want: common.MsgInvalidURL},
		{name: "cancelled", err: common.WrapError(context.Canceled, "bulk"), want: "interrupted"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err))
		})
	}

	assert.Contains(t, describeError(common.NewNetworkError("http://localhost", "connection refused", nil)), "could not reach")
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"config", "init", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "Configuration written to "+path)

	rootCmd.SetArgs([]string{"config", "init", path})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
