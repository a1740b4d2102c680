package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/aleister1102/phishscan/internal/enrichment"
	"github.com/spf13/cobra"
)

const watchScanCommand = "/scan"

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show website information while you type addresses",
	Long: `Watch treats every line read from standard input as a new value of the
address field. Website information is fetched once typing pauses; lines
that are not valid addresses clear it. Enter "/scan" to classify the last
address.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	o, err := newOrchestrator()
	if err != nil {
		return err
	}
	defer o.Close()

	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	o.Fetcher().Subscribe(func(s enrichment.State) {
		if s.Loading || s.Info != nil {
			printEnrichment(out, s.Info, s.Loading)
		}
	})

	lines := bufio.NewScanner(cmd.InOrStdin())
	current := ""
	for lines.Scan() {
		line := lines.Text()
		if strings.TrimSpace(line) == watchScanCommand {
			result, err := o.Scan(ctx, current)
			if err != nil {
				fmt.Fprintln(out, "  "+describeError(err))
				continue
			}
			printResult(out, result)
			continue
		}
		current = line
		o.InputChanged(line)
	}
	if err := lines.Err(); err != nil {
		return err
	}

	return waitForEnrichment(ctx, o.Fetcher())
}
