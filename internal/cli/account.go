package cli

import (
	"fmt"

	"github.com/aleister1102/phishscan/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileUsername    string
	profileDisplayName string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show scan statistics for your account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator()
		if err != nil {
			return err
		}
		defer o.Close()

		stats, err := o.Statistics(cmd.Context())
		if err != nil {
			return err
		}
		printStatistics(cmd.OutOrStdout(), stats)
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	Long: `Profile prints your account details. Pass --username or --display-name
to change them.`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the classification service is ready",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator()
		if err != nil {
			return err
		}
		defer o.Close()

		status, err := o.Health(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !status.Healthy() {
			fmt.Fprintf(out, "%s: %s\n", status.Status, status.Reason)
			return fmt.Errorf("service is %s", status.Status)
		}
		fmt.Fprintln(out, status.Status)
		return nil
	},
}

func init() {
	profileCmd.Flags().StringVar(&profileUsername, "username", "", "new username (at least 3 characters)")
	profileCmd.Flags().StringVar(&profileDisplayName, "display-name", "", "new display name")

	rootCmd.AddCommand(statsCmd, profileCmd, healthCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	o, err := newOrchestrator()
	if err != nil {
		return err
	}
	defer o.Close()

	out := cmd.OutOrStdout()
	if profileUsername != "" || profileDisplayName != "" {
		resp, err := o.UpdateProfile(cmd.Context(), models.ProfileUpdate{
			Username:    profileUsername,
			DisplayName: profileDisplayName,
		})
		if err != nil {
			return err
		}
		if resp.Message != "" {
			fmt.Fprintln(out, resp.Message)
		}
	}

	p, err := o.Profile(cmd.Context())
	if err != nil {
		return err
	}
	printProfile(out, p)
	return nil
}
