// Note delete command soft-deletes a note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Soft-delete a note",
	Long: `Delete marks a note deleted. The note drops out of listings but
stays addressable by ID, so expense links keep resolving.`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteDelete,
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := svc.DeleteNote(args[0]); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	fmt.Printf("Deleted note: %s\n", args[0])
	return nil
}
