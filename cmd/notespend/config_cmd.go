// Config get/set commands over config.yaml.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Long: `Get prints the value of a configuration key from config.yaml.

Example:
  notespend config get theme
  notespend config get profile.name`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a configuration value",
	Long: `Set writes a configuration key to config.yaml.

Example:
  notespend config set theme dark
  notespend config set currency USD
  notespend config set profile.name "Aisha"`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

// validConfigValues constrains enumerated keys. Keys not listed accept any
// value.
var validConfigValues = map[string]map[string]bool{
	cfgKeyTheme:    {"light": true, "dark": true, "auto": true},
	cfgKeyCurrency: {"PKR": true, "USD": true},
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	if !cfg.IsSet(args[0]) {
		return fmt.Errorf("unknown config key %q", args[0])
	}
	fmt.Println(cfg.GetString(args[0]))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if allowed, ok := validConfigValues[key]; ok && !allowed[value] {
		return fmt.Errorf("invalid value %q for %s", value, key)
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	cfg.Set(key, value)
	if err := cfg.WriteConfig(); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
