// Wipe command physically clears collections behind a confirmation step.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var wipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe [collection...]",
	Short: "Permanently erase data",
	Long: `Wipe physically deletes every record in the named collections
(all collections when none are named). Unlike delete, this removes
tombstones too and cannot be undone. A confirmation prompt guards the
operation; --yes skips it.

Example:
  notespend wipe notes
  notespend wipe --yes`,
	RunE: runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeYes, "yes", false, "skip the confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	token, err := svc.Store().RequestWipe(args...)
	if err != nil {
		return fmt.Errorf("request wipe: %w", err)
	}

	if !wipeYes {
		target := "ALL data"
		if len(args) > 0 {
			target = strings.Join(args, ", ")
		}
		fmt.Printf("This permanently erases %s. Type 'yes' to continue: ", target)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := svc.Store().ConfirmWipe(token); err != nil {
		return fmt.Errorf("confirm wipe: %w", err)
	}
	fmt.Println("Wipe complete.")
	return nil
}
