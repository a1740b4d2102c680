package cli

import (
	"fmt"
	"time"

	"github.com/aleister1102/phishscan/internal/history"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	historyInput   history.QueryInput
	historyCSV     bool
	historyArchive bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past scans",
	Long: `History lists your past scans, newest first. Dates are calendar days in
local time; --to includes the whole day.

Example:
  phishscan history --category phishing --from 2024-01-01 --to 2024-01-31
  phishscan history --search paypal --sort confidence-desc --csv`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	flags := historyCmd.Flags()
	flags.StringVarP(&historyInput.Search, "search", "s", "", "case-insensitive substring of the address")
	flags.StringVarP(&historyInput.Category, "category", "c", "all", "all, safe or phishing")
	flags.StringVar(&historyInput.Sort, "sort", string(models.SortDateDesc), "date-desc, date-asc, confidence-desc or confidence-asc")
	flags.StringVar(&historyInput.From, "from", "", "first day to include (YYYY-MM-DD)")
	flags.StringVar(&historyInput.To, "to", "", "last day to include (YYYY-MM-DD)")
	flags.BoolVar(&historyCSV, "csv", false, "write the listed scans as CSV")
	flags.BoolVar(&historyArchive, "archive", false, "write the listed scans as a Parquet archive")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	q, err := history.ParseQuery(historyInput, time.Local)
	if err != nil {
		return err
	}

	o, err := newOrchestrator()
	if err != nil {
		return err
	}
	defer o.Close()

	results, err := o.History(cmd.Context(), q)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHistory(out, results)

	exporter := o.Exporter()
	if historyCSV {
		path, err := exporter.ExportHistory(results)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "CSV written to %s\n", path)
	}
	if historyArchive {
		path, err := exporter.ExportArchive(cmd.Context(), "history", uuid.NewString(), models.ItemsFromResults(results))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Archive written to %s\n", path)
	}
	return nil
}
