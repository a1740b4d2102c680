// Package cli implements the phishscan command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/config"
	"github.com/aleister1102/phishscan/internal/logger"
	"github.com/aleister1102/phishscan/internal/orchestrator"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

var (
	cfgFile string
	verbose bool

	v         = config.NewViper()
	globalCfg *config.GlobalConfig
	appLogger = zerolog.Nop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "phishscan",
	Short: "phishscan - phishing classification from the command line",
	Long: `phishscan submits web addresses to a phishing classification service,
scans address lists in bulk, and browses and exports your scan history.

Log in once with "phishscan login"; the session is kept in ~/.phishscan.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command and maps failures onto a message and exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describeError(err))
		return 1
	}
	return 0
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "phishscan %s\n", Version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml or $HOME/.phishscan/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.String("api-url", "", "classification service base URL")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json, text)")
	flags.String("output-dir", "", "directory for exported reports")

	_ = v.BindPFlag(config.KeyAPIBaseURL, flags.Lookup("api-url"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = v.BindPFlag(config.KeyExportOutputDir, flags.Lookup("output-dir"))

	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file, layers PHISHSCAN_* variables and bound
// flags on top, validates the result and builds the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig(cfgFile, zerolog.Nop())
	if err != nil {
		return err
	}
	config.ApplyOverrides(v, cfg)
	if verbose {
		cfg.LogConfig.LogLevel = "debug"
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	l, err := logger.NewLoggerBuilder().WithConfig(cfg.LogConfig).WithConsole(cmd.ErrOrStderr()).Build()
	if err != nil {
		return common.WrapError(err, "failed to initialize logger")
	}

	globalCfg = cfg
	appLogger = l
	appLogger.Debug().Str("config", config.GetConfigPath(cfgFile)).Str("api", cfg.APIConfig.BaseURL).Msg("Configuration loaded")
	return nil
}

// newOrchestrator builds the pipeline for commands that talk to the backend.
func newOrchestrator() (*orchestrator.Orchestrator, error) {
	if globalCfg == nil {
		return nil, common.NewConfigurationError("", "", "configuration not loaded")
	}
	return orchestrator.NewOrchestrator(globalCfg, appLogger)
}

// describeError turns err into the line shown to the user.
func describeError(err error) string {
	switch common.Kind(err) {
	case common.KindAuth:
		if msg := common.UserMessage(err, ""); msg != "" && msg != common.MsgLoginRequired {
			return msg + " (run \"phishscan login\")"
		}
		return common.MsgLoginRequired + " (run \"phishscan login\")"
	case common.KindCancelled:
		return "interrupted"
	case common.KindNetwork:
		return fmt.Sprintf("could not reach the classification service: %v", err)
	default:
		return common.UserMessage(err, err.Error())
	}
}
