// Expense list command displays the active transaction set.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notespend/notespend/internal/service"
	"github.com/notespend/notespend/pkg/types"
)

var (
	expenseListType     string
	expenseListCategory string
)

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active transactions",
	Long: `List displays all active transactions, newest date first.

Example:
  notespend expense list
  notespend expense list --type income
  notespend expense list --category Travel --json`,
	RunE: runExpenseList,
}

func init() {
	expenseListCmd.Flags().StringVar(&expenseListType, "type", "", "filter by type (expense or income)")
	expenseListCmd.Flags().StringVar(&expenseListCategory, "category", "", "filter by category name")
}

func runExpenseList(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	expenses, err := svc.ActiveExpenses()
	if err != nil {
		return fmt.Errorf("fetch expenses: %w", err)
	}

	filtered := expenses[:0]
	for _, e := range expenses {
		if expenseListType != "" && e.Type != expenseListType {
			continue
		}
		if expenseListCategory != "" && e.Category != expenseListCategory {
			continue
		}
		filtered = append(filtered, e)
	}
	expenses = filtered

	if flagJSON {
		return printJSON(expenses)
	}
	printExpenseTable(svc, expenses)
	return nil
}

// printExpenseTable prints transactions in a human-readable table format.
func printExpenseTable(svc *service.Service, expenses []*types.Expense) {
	if len(expenses) == 0 {
		fmt.Println("No transactions found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tDATE\tTYPE\tAMOUNT\tCATEGORY\tNOTE")
	for _, e := range expenses {
		cat := svc.CategoryFor(e)
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
			shortID(e.ID),
			e.Date,
			e.Type,
			e.Amount,
			cat.Name,
			shortID(e.LinkedNoteID),
		)
	}
	w.Flush()
	fmt.Print(sb.String())
	fmt.Printf("Total: %d transaction(s)\n", len(expenses))
}
