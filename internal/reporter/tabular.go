package reporter

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/aleister1102/phishscan/internal/models"
)

// TabularHeader is the first row of every tabular export.
var TabularHeader = []string{ColumnURL, ColumnResult, ColumnConfidence, ColumnChecked}

// WriteTabular writes one row per item after the header. Fields are quoted
// when they contain a delimiter, quote or line break. Error rows leave the
// confidence empty.
func WriteTabular(w io.Writer, items []models.BulkScanItem, opts Options) error {
	return writeTabular(w, "", items, opts)
}

// WriteTitledTabular is WriteTabular preceded by a title row, a generation
// timestamp row and a blank line.
func WriteTitledTabular(w io.Writer, title string, items []models.BulkScanItem, opts Options) error {
	return writeTabular(w, title, items, opts)
}

// ToTabular renders classified results as tabular text.
func ToTabular(results []models.ScanResult, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := WriteTabular(&buf, models.ItemsFromResults(results), opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeTabular(w io.Writer, title string, items []models.BulkScanItem, opts Options) error {
	opts = opts.withDefaults()
	cw := csv.NewWriter(w)

	if title != "" {
		preamble := [][]string{
			{title},
			{GeneratedOnLabel, opts.formatTime(opts.GeneratedAt)},
			{},
		}
		if err := cw.WriteAll(preamble); err != nil {
			return err
		}
	}

	if err := cw.Write(TabularHeader); err != nil {
		return err
	}
	for _, item := range items {
		if err := cw.Write(tabularRow(item, opts)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func tabularRow(item models.BulkScanItem, opts Options) []string {
	confidence := ""
	if item.HasVerdict() {
		confidence = FormatConfidence(item.Confidence)
	}
	return []string{item.URL, item.Label(), confidence, opts.formatTime(item.CheckedAt)}
}
