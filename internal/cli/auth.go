package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/spf13/cobra"
)

var (
	authUsername string
	authPassword string
	authEmail    string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	Long: `Log in with a username and password. The password is read from standard
input when --password is not given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return authenticate(cmd, false)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log into it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return authenticate(cmd, true)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator()
		if err != nil {
			return err
		}
		defer o.Close()

		if err := o.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator()
		if err != nil {
			return err
		}
		defer o.Close()

		sess := o.Session()
		if err := sess.Require(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Logged in as %s\n", sess.Username)
		if exp, ok := sess.ExpiresAt(); ok {
			fmt.Fprintf(out, "Token expires %s (in %s)\n", exp.Local().Format(time.RFC1123), time.Until(exp).Round(time.Minute))
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVarP(&authUsername, "username", "u", "", "account username")
		c.Flags().StringVarP(&authPassword, "password", "p", "", "account password (read from stdin when empty)")
		_ = c.MarkFlagRequired("username")
	}
	registerCmd.Flags().StringVar(&authEmail, "email", "", "account email")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}

func authenticate(cmd *cobra.Command, register bool) error {
	password := authPassword
	if password == "" {
		var err error
		if password, err = readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: "); err != nil {
			return err
		}
	}

	o, err := newOrchestrator()
	if err != nil {
		return err
	}
	defer o.Close()

	creds := models.Credentials{Username: authUsername, Email: authEmail, Password: password}
	if register {
		_, err = o.Register(cmd.Context(), creds)
	} else {
		_, err = o.Login(cmd.Context(), creds)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", o.Session().Username)
	return nil
}

// readSecret reads one line from in after writing prompt to out.
func readSecret(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", common.NewValidationError("password", "", "password is required")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
