// Import command merges a backup document into the store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a backup document",
	Long: `Import merges a backup document by record id. Existing records
missing from the document are left untouched; a tombstone in the document
overwrites a live record.

Example:
  notespend import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	report, err := svc.Store().Import(f)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Printf("Imported %d note(s), %d expense(s), %d link(s), %d password(s)\n",
		report.Notes, report.Expenses, report.Links, report.Passwords)
	if report.Failed() {
		for section, secErr := range report.Errors {
			fmt.Fprintf(os.Stderr, "section %s failed: %v\n", section, secErr)
		}
		return fmt.Errorf("%d section(s) failed", len(report.Errors))
	}
	return nil
}
