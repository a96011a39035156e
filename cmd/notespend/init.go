// Init command creates the data directory, database, and seeded catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the notespend store",
	Long: `Init creates the data directory and database file, applies the
schema, and seeds the built-in category catalog. Running it on an
existing store is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized notespend store in %s\n", dataDir)
		return nil
	},
}
