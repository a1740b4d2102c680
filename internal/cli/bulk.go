package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/phishscan/internal/bulk"
	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/config"
	"github.com/aleister1102/phishscan/internal/progress"
	"github.com/spf13/cobra"
)

var (
	bulkText     string
	bulkCSV      bool
	bulkArchive  bool
	bulkProgress bool
)

var bulkCmd = &cobra.Command{
	Use:   "bulk [file]",
	Short: "Classify a list of addresses",
	Long: `Bulk reads addresses from a file (.csv files contribute their first
column, anything else one address per line), from --text, or from standard
input, and classifies them in batches.

Example:
  phishscan bulk urls.txt --csv
  cat urls.txt | phishscan bulk --batch-size 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBulk,
}

func init() {
	flags := bulkCmd.Flags()
	flags.StringVar(&bulkText, "text", "", "addresses separated by newlines")
	flags.Int("batch-size", config.DefaultBulkMaxBatchSize, "addresses per request (1-100)")
	flags.BoolVar(&bulkCSV, "csv", false, "write the results as CSV")
	flags.BoolVar(&bulkArchive, "archive", false, "write the results as a Parquet archive")
	flags.BoolVar(&bulkProgress, "progress", true, "log progress while batches run")
	_ = v.BindPFlag(config.KeyBulkMaxBatchSize, flags.Lookup("batch-size"))

	rootCmd.AddCommand(bulkCmd)
}

func bulkSource(cmd *cobra.Command, args []string) (bulk.Source, func(), error) {
	switch {
	case len(args) == 1 && bulkText != "":
		return nil, nil, common.NewValidationError("text", bulkText, "pass either a file or --text")
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, common.WrapError(err, common.MsgFileRead)
		}
		return bulk.FileSource{Name: filepath.Base(args[0]), Reader: f}, func() { _ = f.Close() }, nil
	case bulkText != "":
		return bulk.TextSource{Text: bulkText}, func() {}, nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, nil, common.WrapError(err, common.MsgFileRead)
		}
		return bulk.TextSource{Text: string(data)}, func() {}, nil
	}
}

func runBulk(cmd *cobra.Command, args []string) error {
	src, done, err := bulkSource(cmd, args)
	if err != nil {
		return err
	}
	defer done()

	o, err := newOrchestrator()
	if err != nil {
		return err
	}
	defer o.Close()

	addresses, err := o.IngestBulk(src)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d addresses loaded\n", len(addresses))

	if bulkProgress {
		display := progress.NewProgressDisplayManager(o.Bulk().Progress(), appLogger, &progress.ProgressDisplayConfig{
			DisplayInterval:   2 * time.Second,
			EnableProgress:    true,
			ShowETAEstimation: true,
		})
		display.Start()
		defer display.Stop()
	}

	items, err := o.RunBulk(cmd.Context())
	if err != nil {
		return err
	}

	printItems(out, items)
	s := o.Bulk().Summary()
	fmt.Fprintf(out, "\n%d scanned: %d phishing, %d safe, %d errors (%s)\n",
		s.Stats.Total, s.Stats.Phishing, s.Stats.Safe, s.Stats.Errors, s.ScanDuration.Round(time.Millisecond))

	exporter := o.Exporter()
	if bulkCSV {
		path, err := exporter.ExportBulk(items)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "CSV written to %s\n", path)
	}
	if bulkArchive {
		path, err := exporter.ExportArchive(cmd.Context(), "bulk", s.RunID, items)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Archive written to %s\n", path)
	}
	return nil
}
