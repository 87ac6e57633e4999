package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/cmd/types"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the parent command for config operations
func ConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Config subcommands",
	}

	c.AddCommand(getCmd(), setCmd(), showCmd())

	return c
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the entire configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := cfg.Export()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Get a config value",
		Long: `Get a config value by key. Use dot notation for nested values.

Examples:
  forgedash config get api_config.port
  forgedash config get forge_config.base_url
  forgedash config get locale_config`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			value, err := GetValue(cfg, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set a config value",
		Long: `Set a config value by key. Use dot notation for nested values.

Examples:
  forgedash config set api_config.port 8080
  forgedash config set forge_config.client_id <id>
  forgedash config set locale_config.time_zone Europe/Paris`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := cmd.Flags().GetString(types.FlagHome)
			if err != nil {
				return err
			}

			// the file, not the env-merged view, is what gets written back
			cfg, err := config.ReadConfigFile(home)
			if err != nil {
				return err
			}

			updated, err := SetValue(cfg, args[0], args[1])
			if err != nil {
				return err
			}

			if err := config.WriteConfigFile(home, updated); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", args[0], args[1])
			return nil
		},
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	home, err := cmd.Flags().GetString(types.FlagHome)
	if err != nil {
		return nil, err
	}
	return config.Init(home)
}

// toTree converts cfg to its yaml representation keyed by yaml tags.
func toTree(cfg *config.Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	tree := make(map[string]any)
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// walk returns the map holding the last key of path.
func walk(tree map[string]any, parts []string) (map[string]any, error) {
	node := tree
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unknown config key: %s", part)
		}
		node = next
	}
	if _, ok := node[parts[len(parts)-1]]; !ok {
		return nil, fmt.Errorf("unknown config key: %s", parts[len(parts)-1])
	}
	return node, nil
}

// GetValue returns the value at a dotted key; sections print as yaml.
func GetValue(cfg *config.Config, key string) (string, error) {
	tree, err := toTree(cfg)
	if err != nil {
		return "", err
	}

	parts := strings.Split(key, ".")
	node, err := walk(tree, parts)
	if err != nil {
		return "", err
	}

	switch v := node[parts[len(parts)-1]].(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to serialize value: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// SetValue returns a copy of cfg with the dotted key set. The value is parsed
// as yaml so numbers, booleans and lists keep their types; a value that does
// not fit the field is rejected.
func SetValue(cfg *config.Config, key string, value string) (*config.Config, error) {
	tree, err := toTree(cfg)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(key, ".")
	node, err := walk(tree, parts)
	if err != nil {
		return nil, err
	}

	if _, isSection := node[parts[len(parts)-1]].(map[string]any); isSection {
		return nil, fmt.Errorf("cannot set section %s, set one of its keys instead", key)
	}

	var parsed any
	if err := yaml.Unmarshal([]byte(value), &parsed); err != nil {
		parsed = value
	}
	if _, isString := node[parts[len(parts)-1]].(string); isString {
		parsed = value
	}
	node[parts[len(parts)-1]] = parsed

	data, err := yaml.Marshal(tree)
	if err != nil {
		return nil, err
	}

	updated := config.DefaultConfig()
	if err := yaml.Unmarshal(data, updated); err != nil {
		return nil, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return updated, nil
}
