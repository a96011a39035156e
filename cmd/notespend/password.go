// Password command group: sealed credentials for external services.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notespend/notespend/pkg/types"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Manage stored passwords",
}

var (
	passwordAddUsername string
	passwordAddSecret   string
)

var passwordAddCmd = &cobra.Command{
	Use:   "add <service>",
	Short: "Store a password entry",
	Long: `Add stores a credential for an external service. The secret is
encrypted under the device key before it is written.

Example:
  notespend password add github --username aisha --secret hunter2`,
	Args: cobra.ExactArgs(1),
	RunE: runPasswordAdd,
}

var passwordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active password entries",
	Long:  `List shows the active entries. Secrets stay sealed; use show to reveal one.`,
	RunE:  runPasswordList,
}

var passwordShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Reveal the cleartext secret of an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runPasswordShow,
}

var passwordDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Soft-delete a password entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runPasswordDelete,
}

func init() {
	passwordAddCmd.Flags().StringVar(&passwordAddUsername, "username", "", "username for the service")
	passwordAddCmd.Flags().StringVar(&passwordAddSecret, "secret", "", "the password to store (required)")
	_ = passwordAddCmd.MarkFlagRequired("secret")

	passwordCmd.AddCommand(passwordAddCmd)
	passwordCmd.AddCommand(passwordListCmd)
	passwordCmd.AddCommand(passwordShowCmd)
	passwordCmd.AddCommand(passwordDeleteCmd)
}

func runPasswordAdd(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	p, err := svc.CreatePassword(args[0], passwordAddUsername, passwordAddSecret)
	if err != nil {
		return fmt.Errorf("create password entry: %w", err)
	}
	fmt.Printf("Stored password entry: %s\n", shortID(p.ID))
	return nil
}

func runPasswordList(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	entries, err := svc.ActivePasswords()
	if err != nil {
		return fmt.Errorf("fetch password entries: %w", err)
	}

	if flagJSON {
		return printJSON(entries)
	}
	printPasswordTable(entries)
	return nil
}

func runPasswordShow(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	secret, err := svc.RevealPassword(args[0])
	if err != nil {
		return fmt.Errorf("reveal password: %w", err)
	}
	fmt.Println(secret)
	return nil
}

func runPasswordDelete(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := svc.DeletePassword(args[0]); err != nil {
		return fmt.Errorf("delete password entry: %w", err)
	}
	fmt.Printf("Deleted password entry: %s\n", args[0])
	return nil
}

// printPasswordTable prints entries without secrets.
func printPasswordTable(entries []*types.PasswordEntry) {
	if len(entries) == 0 {
		fmt.Println("No password entries found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tSERVICE\tUSERNAME\tCREATED")
	for _, p := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			shortID(p.ID),
			truncate(p.ServiceName, 30),
			truncate(p.Username, 30),
			p.CreatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()
	fmt.Print(sb.String())
	fmt.Printf("Total: %d entry(ies)\n", len(entries))
}
