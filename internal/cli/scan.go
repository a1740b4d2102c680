package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aleister1102/phishscan/internal/enrichment"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/spf13/cobra"
)

var (
	scanPDF  bool
	scanCSV  bool
	scanInfo bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <address>",
	Short: "Classify a single web address",
	Long: `Scan normalizes the address (scheme and "www." are optional), submits it
for classification and prints the verdict with the signals behind it.

Example:
  phishscan scan example.com
  phishscan scan http://www.example.com/login --info --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanPDF, "pdf", false, "write a PDF report to the output directory")
	scanCmd.Flags().BoolVar(&scanCSV, "csv", false, "write a CSV row to the output directory")
	scanCmd.Flags().BoolVar(&scanInfo, "info", false, "fetch website information before scanning")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	o, err := newOrchestrator()
	if err != nil {
		return err
	}
	defer o.Close()

	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	if scanInfo {
		o.InputChanged(args[0])
		if err := waitForEnrichment(ctx, o.Fetcher()); err != nil {
			return err
		}
		state := o.Fetcher().State()
		printEnrichment(out, state.Info, false)
	}

	result, err := o.Scan(ctx, args[0])
	if err != nil {
		return err
	}
	printResult(out, result)

	exporter := o.Exporter()
	if scanCSV {
		path, err := exporter.ExportHistory([]models.ScanResult{result})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "CSV written to %s\n", path)
	}
	if scanPDF {
		path, err := exporter.ExportReport(result, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "PDF written to %s\n", path)
	}
	return nil
}

// waitForEnrichment blocks until the fetcher has nothing scheduled or in flight.
func waitForEnrichment(ctx context.Context, f *enrichment.Fetcher) error {
	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	for f.Pending() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
