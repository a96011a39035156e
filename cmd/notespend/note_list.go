// Note list command displays the active note set.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notespend/notespend/pkg/types"
)

var noteListPinned bool

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active notes",
	Long: `List displays all active notes, newest first. Soft-deleted notes
are excluded.

Example:
  notespend note list
  notespend note list --pinned
  notespend note list --json`,
	RunE: runNoteList,
}

func init() {
	noteListCmd.Flags().BoolVar(&noteListPinned, "pinned", false, "only pinned notes")
}

func runNoteList(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	notes, err := svc.ActiveNotes()
	if err != nil {
		return fmt.Errorf("fetch notes: %w", err)
	}
	if noteListPinned {
		pinned := notes[:0]
		for _, n := range notes {
			if n.Pinned == 1 {
				pinned = append(pinned, n)
			}
		}
		notes = pinned
	}

	if flagJSON {
		return printJSON(notes)
	}
	printNoteTable(notes)
	return nil
}

// printNoteTable prints notes in a human-readable table format.
func printNoteTable(notes []*types.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tTAGS\tPIN\tLINKED\tCREATED")
	for _, n := range notes {
		pin := ""
		if n.Pinned == 1 {
			pin = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			shortID(n.ID),
			truncate(n.Title, 40),
			strings.Join(n.Tags, ","),
			pin,
			len(n.LinkedExpenseIDs),
			n.CreatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()
	fmt.Print(sb.String())
	fmt.Printf("Total: %d note(s)\n", len(notes))
}
