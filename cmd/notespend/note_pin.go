// Note pin command toggles the pinned flag.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notePinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Toggle a note's pinned flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotePin,
}

func runNotePin(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	n, err := svc.TogglePin(args[0])
	if err != nil {
		return fmt.Errorf("toggle pin: %w", err)
	}

	if flagJSON {
		return printJSON(n)
	}
	state := "unpinned"
	if n.Pinned == 1 {
		state = "pinned"
	}
	fmt.Printf("Note %s is now %s\n", shortID(n.ID), state)
	return nil
}
