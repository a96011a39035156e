// Shared helpers for notespend CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/notespend/notespend/internal/cryptox"
	"github.com/notespend/notespend/internal/logging"
	"github.com/notespend/notespend/internal/service"
	"github.com/notespend/notespend/internal/store"
	"github.com/notespend/notespend/pkg/types"
)

// openService resolves the directories, opens the store, loads the device
// key, and wires a service. The caller must call the returned close
// function.
func openService() (*service.Service, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve config dir: %w", err)
	}

	key, err := cryptox.LoadOrCreateDeviceKey(configDir)
	if err != nil {
		return nil, nil, err
	}
	sealer, err := cryptox.NewSealer(key)
	if err != nil {
		return nil, nil, err
	}

	st := store.New()
	if err := st.Open(types.Config{DataDir: dataDir}); err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	svc := service.New(st, logging.NewDefault(), sealer)
	return svc, func() { st.Close() }, nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// shortID truncates an ID to its first 8 characters for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens a string for table display.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
