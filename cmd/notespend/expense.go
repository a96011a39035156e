// Expense command group.
package main

import (
	"github.com/spf13/cobra"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expenses and income",
}

func init() {
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseUpdateCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)
}
