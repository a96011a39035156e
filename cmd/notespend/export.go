// Export command writes the backup document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data to a backup document",
	Long: `Export writes a JSON backup of every note, expense, saved link,
and password entry, including soft-deleted tombstones. Without --output
the document goes to stdout.

Example:
  notespend export --output backup.json
  notespend export > backup.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	if exportOutput == "" {
		return svc.Store().Export(os.Stdout)
	}

	if err := svc.Store().ExportToFile(exportOutput); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Printf("Exported backup to %s\n", exportOutput)
	return nil
}
