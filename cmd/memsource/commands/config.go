package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/pkg/msclient"
)

const (
	configDirName  = ".memsource"
	configFileName = "config.yml"
)

// Config represents the CLI configuration file.
type Config struct {
	Endpoint     string `json:"endpoint,omitempty"      yaml:"endpoint,omitempty"`
	Token        string `json:"token,omitempty"         yaml:"token,omitempty"`
	TokenExpires string `json:"token_expires,omitempty" yaml:"token_expires,omitempty"`
	Username     string `json:"username,omitempty"      yaml:"username,omitempty"`
	Email        string `json:"email,omitempty"         yaml:"email,omitempty"`
	Output       string `json:"output,omitempty"        yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the memsource config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Token != "" {
				config.Token = constants.MaskedSecret
			}

			structured, err := writeStructured(cmd.OutOrStdout(), config)
			if structured || err != nil {
				return err
			}

			return displayConfigTable(cmd.OutOrStdout(), config)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value (endpoint, username or output)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "Set", args[0], args[1])
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value so its default applies again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "Unset", args[0], "")
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the config file, including any stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "Cleared", "all configuration", "")
		},
	}
}

func loadConfig() *Config {
	config := &Config{
		Endpoint:     viper.GetString("endpoint"),
		Token:        viper.GetString("token"),
		TokenExpires: viper.GetString("token_expires"),
		Username:     viper.GetString("username"),
		Email:        viper.GetString("email"),
	}

	// The output flag always has a default; only a stored choice is kept.
	if viper.InConfig("output") {
		config.Output = viper.GetString("output")
	}

	return config
}

// configFilePath returns the file in use, or $HOME/.memsource/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Keep this process in step with the file.
	viper.Set("endpoint", config.Endpoint)
	viper.Set("token", config.Token)
	viper.Set("token_expires", config.TokenExpires)
	viper.Set("username", config.Username)
	viper.Set("email", config.Email)

	return nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "endpoint":
		endpoint := msclient.NormalizeEndpoint(value)

		err := validation.Validate(endpoint, is.URL)
		if err != nil {
			return fmt.Errorf("invalid endpoint %q: %w", value, err)
		}

		config.Endpoint = endpoint
	case "username":
		config.Username = value
	case "output":
		err := ValidateOutput(value)
		if err != nil {
			return err
		}

		config.Output = value
	case "token", "token_expires":
		return constants.ErrTokenCannotBeSet
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case "endpoint":
		config.Endpoint = ""
	case "username":
		config.Username = ""
	case "output":
		config.Output = ""
	case "token", "token_expires":
		config.Token = ""
		config.TokenExpires = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func displayConfigTable(w io.Writer, config *Config) error {
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint + " (default)"
	}

	return renderProperties(w, [][]string{
		{"Endpoint", endpoint},
		{"Username", displayValue(config.Username)},
		{"Email", displayValue(config.Email)},
		{"Token", displayValue(config.Token)},
		{"Token Expires", displayValue(config.TokenExpires)},
		{"Output", displayValue(config.Output)},
	})
}

func outputConfigUpdateResult(w io.Writer, action, key, value string) error {
	result := buildConfigResult(action, key, value)

	structured, err := writeStructured(w, result)
	if structured || err != nil {
		return err
	}

	rows := [][]string{
		{"Action", action},
		{"Key", key},
	}

	if value != "" {
		rows = append(rows, []string{"Value", value})
	}

	return renderProperties(w, rows)
}

func buildConfigResult(action, key, value string) map[string]string {
	result := map[string]string{
		"action": action,
		"key":    key,
	}

	if value != "" {
		result["value"] = value
	}

	return result
}
