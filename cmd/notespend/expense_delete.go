// Expense delete command soft-deletes a transaction.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Soft-delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseDelete,
}

func runExpenseDelete(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := svc.DeleteExpense(args[0]); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	fmt.Printf("Deleted expense: %s\n", args[0])
	return nil
}
