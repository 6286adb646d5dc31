package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lagreeflow/lagree/internal/config"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Restore the default binding for a key"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysResetCmd removes a custom key binding
type SettingsKeysResetCmd struct {
	Key string `arg:"" help:"Key name (e.g., play_pause, skip, help)"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., play_pause, skip, help)"`
	Value string `arg:"" help:"Key binding (e.g., p, ctrl+n, or comma-separated for multiple: p,space)"`
}

// keyBindingJSON is the JSON shape of one key binding
type keyBindingJSON struct {
	Action  string   `json:"action"`
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var customKeys config.KeyBindingsConfig
	if cli.settings != nil {
		customKeys = cli.settings.Keys
	}

	if s.Format == "json" {
		result := make(map[string]keyBindingJSON, len(ui.AllKeyDefinitions))
		for _, def := range ui.AllKeyDefinitions {
			result[def.Name] = keyBindingJSON{
				Action:  def.Help,
				Custom:  customKeys[def.Name],
				Default: def.Defaults,
			}
		}
		return printJSON(result)
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tAction\tDefault\tCustom")
	fmt.Fprintln(w, "────\t──────\t───────\t──────")
	for _, def := range ui.AllKeyDefinitions {
		customStr := "-"
		if custom := customKeys[def.Name]; len(custom) > 0 {
			customStr = strings.Join(custom, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", def.Name, def.Help, strings.Join(def.Defaults, ", "), customStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'lagree settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if err := validateKeyName(s.Key); err != nil {
		return err
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	err := updateKeyBindings(func(keys config.KeyBindingsConfig) {
		keys[s.Key] = values
	})
	if err != nil {
		return err
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	if err := validateKeyName(s.Key); err != nil {
		return err
	}

	err := updateKeyBindings(func(keys config.KeyBindingsConfig) {
		delete(keys, s.Key)
	})
	if err != nil {
		return err
	}

	fmt.Printf("Reset '%s' to: %s\n", s.Key, strings.Join(ui.GetDefaultKeyBindings()[s.Key], ", "))
	return nil
}

func validateKeyName(name string) error {
	if !ui.IsValidKeyName(name) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}
	return nil
}

// updateKeyBindings loads settings.json, applies change and saves it back
// if the resulting bindings have no conflicts
func updateKeyBindings(change func(config.KeyBindingsConfig)) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	change(settings.Keys)

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
