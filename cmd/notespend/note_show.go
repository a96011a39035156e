// Note show command displays one note, tombstones included.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteShow,
}

func runNoteShow(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	n, err := svc.GetNote(args[0])
	if err != nil {
		return fmt.Errorf("get note: %w", err)
	}

	if flagJSON {
		return printJSON(n)
	}

	fmt.Printf("ID:          %s\n", n.ID)
	fmt.Printf("Title:       %s\n", n.Title)
	if n.Description != "" {
		fmt.Printf("Description: %s\n", n.Description)
	}
	if len(n.Tags) > 0 {
		fmt.Printf("Tags:        %s\n", strings.Join(n.Tags, ", "))
	}
	fmt.Printf("Pinned:      %v\n", n.Pinned == 1)
	if len(n.LinkedExpenseIDs) > 0 {
		fmt.Printf("Expenses:    %s\n", strings.Join(n.LinkedExpenseIDs, ", "))
	}
	fmt.Printf("Created:     %s\n", n.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Updated:     %s\n", n.UpdatedAt.Format("2006-01-02 15:04"))
	if n.IsDeleted == 1 {
		deletedAt := ""
		if n.DeletedAt != nil {
			deletedAt = n.DeletedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("Deleted:     %s\n", deletedAt)
	}
	return nil
}
