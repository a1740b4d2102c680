package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aleister1102/phishscan/internal/config"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := globalCfg.ToYAML()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if path := config.GetConfigPath(cfgFile); path != "" {
			fmt.Fprintf(out, "# loaded from %s\n", path)
		}
		_, err = out.Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := defaultConfigFile()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			path = args[0]
		}

		if err := config.NewDefaultGlobalConfig().WriteFile(path, configForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func defaultConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, config.DefaultSessionDir, "config.yaml"), nil
}
