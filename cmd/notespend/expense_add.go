// Expense add command records a new transaction.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/notespend/notespend/pkg/types"
)

var (
	expenseAddType        string
	expenseAddCategory    string
	expenseAddDate        string
	expenseAddDescription string
	expenseAddNote        string
)

var expenseAddCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Record an expense or income",
	Long: `Add records a transaction. The amount is a positive number;
direction comes from --type.

Example:
  notespend expense add 450.50 --category "Food & Dining"
  notespend expense add 3000 --type income --category Salary
  notespend expense add 250 --category Travel --note <note-id>`,
	Args: cobra.ExactArgs(1),
	RunE: runExpenseAdd,
}

func init() {
	expenseAddCmd.Flags().StringVar(&expenseAddType, "type", types.TypeExpense, "transaction type (expense or income)")
	expenseAddCmd.Flags().StringVar(&expenseAddCategory, "category", "", "category name (required)")
	expenseAddCmd.Flags().StringVar(&expenseAddDate, "date", "", "calendar date YYYY-MM-DD (default: today)")
	expenseAddCmd.Flags().StringVar(&expenseAddDescription, "description", "", "free-form description")
	expenseAddCmd.Flags().StringVar(&expenseAddNote, "note", "", "note ID to link this transaction to")
	_ = expenseAddCmd.MarkFlagRequired("category")
}

func runExpenseAdd(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: %w: %q", types.ErrValidation, types.ErrInvalidAmount, args[0])
	}

	date := expenseAddDate
	if date == "" {
		date = time.Now().Format(types.DateLayout)
	}

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	e, err := svc.CreateExpense(expenseAddType, amount, expenseAddCategory, date, expenseAddDescription, expenseAddNote)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}

	if flagJSON {
		return printJSON(e)
	}
	fmt.Printf("Recorded %s: %s\n", e.Type, e.ID)
	return nil
}
