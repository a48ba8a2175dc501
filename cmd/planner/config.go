// Config loading for the planner CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/dayplan/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir      = "data_dir"
	cfgKeyUserID       = "user_id"
	cfgKeyDefaultTasks = "default_tasks"
	cfgKeyMinTasks     = "min_tasks"
	cfgKeyCarryLimit   = "carry_limit"
	cfgKeyBacklogTTL   = "backlog_ttl_days"

	// envUser overrides the stored user id.
	envUser = "DAYPLAN_USER"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Planner CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Stable user id for this machine (generated on first run when absent)
# user_id:

# Plan seeded into an empty day (one line per task)
# default_tasks:
#   - ...

# Baseline plan size guaranteed after a close
min_tasks: 3

# Carries after which an undone task is demoted into the backlog
carry_limit: 3

# Days until a backlog item is flagged as overdue
backlog_ttl_days: 7
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDefaultTasks, types.DefaultTasks)
	v.SetDefault(cfgKeyMinTasks, types.DefaultMinTasks)
	v.SetDefault(cfgKeyCarryLimit, types.DefaultCarryLimit)
	v.SetDefault(cfgKeyBacklogTTL, types.DefaultBacklogTTLDays)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// engineConfig assembles the planner policy from config.yaml values.
func engineConfig(v *viper.Viper) types.Config {
	return types.Config{
		DefaultTasks:   v.GetStringSlice(cfgKeyDefaultTasks),
		MinTasks:       v.GetInt(cfgKeyMinTasks),
		CarryLimit:     v.GetInt(cfgKeyCarryLimit),
		BacklogTTLDays: v.GetInt(cfgKeyBacklogTTL),
	}
}

// resolveUser returns the stable user id following the precedence:
// --user flag > DAYPLAN_USER env > config.yaml user_id > a freshly
// generated UUID v7 persisted to config.yaml.
func resolveUser(v *viper.Viper, configDir string) (string, error) {
	if flagUser != "" {
		return flagUser, nil
	}
	if env := os.Getenv(envUser); env != "" {
		return env, nil
	}
	if id := v.GetString(cfgKeyUserID); id != "" {
		return id, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate user id: %w", err)
	}
	if err := appendUserID(configDir, id.String()); err != nil {
		return "", fmt.Errorf("persist user id: %w", err)
	}
	return id.String(), nil
}

// appendUserID records a generated user id in config.yaml. Appending
// keeps the commented template intact.
func appendUserID(configDir, id string) error {
	path := filepath.Join(configDir, configFileExt)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "\nuser_id: %s\n", id)
	return err
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
