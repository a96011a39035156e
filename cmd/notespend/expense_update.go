// Expense update command merge-patches a transaction.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/notespend/notespend/pkg/types"
)

var (
	expenseUpdateType        string
	expenseUpdateAmount      string
	expenseUpdateCategory    string
	expenseUpdateDate        string
	expenseUpdateDescription string
	expenseUpdateNote        string
)

var expenseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a transaction",
	Long: `Update changes only the fields named by flags; everything else is
left as stored.

Example:
  notespend expense update <id> --amount 99.99
  notespend expense update <id> --category Travel --note <note-id>`,
	Args: cobra.ExactArgs(1),
	RunE: runExpenseUpdate,
}

func init() {
	expenseUpdateCmd.Flags().StringVar(&expenseUpdateType, "type", "", "transaction type (expense or income)")
	expenseUpdateCmd.Flags().StringVar(&expenseUpdateAmount, "amount", "", "positive amount")
	expenseUpdateCmd.Flags().StringVar(&expenseUpdateCategory, "category", "", "category name")
	expenseUpdateCmd.Flags().StringVar(&expenseUpdateDate, "date", "", "calendar date YYYY-MM-DD")
	expenseUpdateCmd.Flags().StringVar(&expenseUpdateDescription, "description", "", "free-form description")
	expenseUpdateCmd.Flags().StringVar(&expenseUpdateNote, "note", "", "note ID to link this transaction to")
}

func runExpenseUpdate(cmd *cobra.Command, args []string) error {
	fields := make(map[string]any)
	if cmd.Flags().Changed("type") {
		fields["type"] = expenseUpdateType
	}
	if cmd.Flags().Changed("amount") {
		amount, err := strconv.ParseFloat(expenseUpdateAmount, 64)
		if err != nil {
			return fmt.Errorf("%w: %w: %q", types.ErrValidation, types.ErrInvalidAmount, expenseUpdateAmount)
		}
		fields["amount"] = amount
	}
	if cmd.Flags().Changed("category") {
		fields["category"] = expenseUpdateCategory
	}
	if cmd.Flags().Changed("date") {
		fields["date"] = expenseUpdateDate
	}
	if cmd.Flags().Changed("description") {
		fields["description"] = expenseUpdateDescription
	}
	if cmd.Flags().Changed("note") {
		fields["linkedNoteId"] = expenseUpdateNote
	}
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := svc.UpdateExpense(args[0], fields); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	fmt.Printf("Updated expense: %s\n", args[0])
	return nil
}
