// Register and login commands for the local account.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	registerEmail    string
	registerPassword string
	loginPassword    string
)

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create the local account",
	Long: `Register creates the single local account identity. The password
is hashed with bcrypt; the cleartext is never stored.

Example:
  notespend register aisha --email aisha@example.com --password "correct horse"`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Verify the account credentials",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password (required)")
	_ = registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (required)")
	_ = loginCmd.MarkFlagRequired("password")
}

func runRegister(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	identity, err := svc.Register(args[0], registerEmail, registerPassword)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	if flagJSON {
		return printJSON(identity)
	}
	fmt.Printf("Registered account %s (%s)\n", identity.Username, shortID(identity.UserID))
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	identity, err := svc.Login(args[0], loginPassword)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome back, %s\n", identity.Username)
	return nil
}
