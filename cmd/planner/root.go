// Root command for the planner CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/paths"
	"github.com/mesh-intelligence/dayplan/pkg/dayplan"
	"github.com/mesh-intelligence/dayplan/pkg/types"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagUser      string
)

// Set by PersistentPreRunE so all subcommands can use them.
var (
	// configDataDir holds the data_dir value loaded from config.yaml.
	configDataDir string

	// engineCfg is the planner policy assembled from config.yaml.
	engineCfg types.Config

	// currentUser is the resolved stable user id.
	currentUser string
)

var rootCmd = &cobra.Command{
	Use:     "planner",
	Short:   "Planner is a local-first daily planning assistant",
	Version: dayplan.Version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		engineCfg = engineConfig(cfg)

		user, err := resolveUser(cfg, configDir)
		if err != nil {
			return err
		}
		currentUser = user
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.dayplan-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "act as this user id (default: user_id from config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(reopenCmd)
	rootCmd.AddCommand(backlogCmd)
	rootCmd.AddCommand(habitCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(watchCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > DAYPLAN_DATA_DIR env > default
// $(CWD)/.dayplan-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > DAYPLAN_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
