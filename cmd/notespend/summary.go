// Summary command shows the dashboard aggregates.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, spending, and balance over the active set",
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	income, expense, balance, err := svc.Balance()
	if err != nil {
		return fmt.Errorf("compute balance: %w", err)
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	currency := cfg.GetString(cfgKeyCurrency)

	if flagJSON {
		return printJSON(map[string]any{
			"income":   income,
			"expense":  expense,
			"balance":  balance,
			"currency": currency,
		})
	}

	if name := cfg.GetString(cfgKeyProfileName); name != "" {
		fmt.Printf("Profile:  %s\n", name)
	}
	fmt.Printf("Income:   %.2f %s\n", income, currency)
	fmt.Printf("Expense:  %.2f %s\n", expense, currency)
	fmt.Printf("Balance:  %.2f %s\n", balance, currency)
	return nil
}
