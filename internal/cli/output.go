package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/aleister1102/phishscan/internal/models"
	"github.com/aleister1102/phishscan/internal/reporter"
)

const listTimeLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func verdictLine(isPhishing bool) string {
	if isPhishing {
		return reporter.VerdictPhishing
	}
	return reporter.VerdictLegitimate
}

func printResult(w io.Writer, result models.ScanResult) {
	fmt.Fprintf(w, "%s\n", result.URL)
	fmt.Fprintf(w, "  %s (%s confidence)\n", verdictLine(result.IsPhishing), reporter.FormatConfidence(result.Confidence))
	if len(result.Features) == 0 {
		return
	}

	fmt.Fprintln(w, "  Details:")
	tw := newTable(w)
	for _, f := range result.Features {
		fmt.Fprintf(tw, "    %s\t%s\n", models.HumanizeFeatureName(f.Name), models.FormatFeatureValue(f.Value))
	}
	_ = tw.Flush()
}

func printEnrichment(w io.Writer, info *models.EnrichmentInfo, loading bool) {
	switch {
	case loading:
		fmt.Fprintln(w, "  ... fetching website information")
	case info == nil:
		return
	case info.Failed():
		fmt.Fprintf(w, "  %s: %s\n", info.Domain, info.Error)
	default:
		parts := []string{info.Domain}
		if t := models.StringValue(info.Title); t != "" {
			parts = append(parts, fmt.Sprintf("%q", t))
		}
		if info.HTTPStatus != nil {
			parts = append(parts, fmt.Sprintf("HTTP %d", *info.HTTPStatus))
		}
		if ct := models.StringValue(info.ContentType); ct != "" {
			parts = append(parts, ct)
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, " | "))
		if d := models.StringValue(info.Description); d != "" {
			fmt.Fprintf(w, "  %s\n", d)
		}
	}
}

func printItems(w io.Writer, items []models.BulkScanItem) {
	tw := newTable(w)
	fmt.Fprintln(tw, "URL\tRESULT\tCONFIDENCE\tNOTE")
	for _, item := range items {
		confidence := ""
		if item.HasVerdict() {
			confidence = reporter.FormatConfidence(item.Confidence)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", item.URL, item.Label(), confidence, item.Error)
	}
	_ = tw.Flush()
}

func printHistory(w io.Writer, results []models.ScanResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No scans match.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "CHECKED\tRESULT\tCONFIDENCE\tURL")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", formatLocal(r.CheckedAt), r.Label(), reporter.FormatConfidence(r.Confidence), r.URL)
	}
	_ = tw.Flush()
}

func printStatistics(w io.Writer, s models.Statistics) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Total scans\t%d\n", s.TotalScans)
	fmt.Fprintf(tw, "Safe\t%d\n", s.SafeCount)
	fmt.Fprintf(tw, "Phishing\t%d (%.1f%%)\n", s.PhishingCount, s.PhishingRate())
	fmt.Fprintf(tw, "Average confidence\t%.1f%%\n", s.AverageConfidence)
	_ = tw.Flush()

	if len(s.RecentActivity) > 0 {
		fmt.Fprintln(w, "\nRecent activity:")
		tw = newTable(w)
		for _, p := range s.RecentActivity {
			fmt.Fprintf(tw, "  %s\t%d\t%s\n", p.Date, p.Scans, strings.Repeat("#", min(p.Scans, 40)))
		}
		_ = tw.Flush()
	}

	if len(s.LatestScans) > 0 {
		fmt.Fprintln(w, "\nLatest scans:")
		printHistory(w, s.LatestScans)
	}
}

func printProfile(w io.Writer, p models.Profile) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Username\t%s\n", p.Username)
	if p.DisplayName != "" {
		fmt.Fprintf(tw, "Display name\t%s\n", p.DisplayName)
	}
	if p.Email != "" {
		fmt.Fprintf(tw, "Email\t%s\n", p.Email)
	}
	if p.AuthProvider != "" {
		fmt.Fprintf(tw, "Provider\t%s\n", p.AuthProvider)
	}
	fmt.Fprintf(tw, "Member since\t%s\n", formatLocal(p.CreatedAt))
	fmt.Fprintf(tw, "Total scans\t%d\n", p.TotalScans)
	_ = tw.Flush()
}

func formatLocal(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format(listTimeLayout)
}
