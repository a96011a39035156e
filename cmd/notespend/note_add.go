// Note add command creates a new note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	noteAddDescription string
	noteAddTags        []string
)

var noteAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new note",
	Long: `Add creates a new note with the given title.

Example:
  notespend note add "Trip to Lahore"
  notespend note add "Groceries" --description "weekly list" --tag errands
  notespend note add "Ideas" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteAdd,
}

func init() {
	noteAddCmd.Flags().StringVar(&noteAddDescription, "description", "", "note body text")
	noteAddCmd.Flags().StringArrayVar(&noteAddTags, "tag", nil, "tag (repeatable)")
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	n, err := svc.CreateNote(args[0], noteAddDescription, noteAddTags)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	if flagJSON {
		return printJSON(n)
	}
	fmt.Printf("Created note: %s\n", n.ID)
	return nil
}
