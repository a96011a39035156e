// Package main provides the notespend CLI, a local-first manager for
// notes, expenses, saved links, and password entries.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/notespend/notespend/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, types.ErrValidation) || errors.Is(err, types.ErrNotFound) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
