// Notify commands manage the reminder schedule stored in the user's
// record.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/service"
	"github.com/mesh-intelligence/dayplan/pkg/types"
)

var (
	notifyMorning string
	notifyEvening string
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage the reminder schedule",
}

var notifyOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable morning and evening reminders",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("notify on", service.SetNotify{Config: types.NotifyConfig{
			Enabled:   true,
			MorningAt: notifyMorning,
			EveningAt: notifyEvening,
		}})
	},
}

var notifyOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable reminders",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("notify off", service.SetNotify{Config: types.NotifyConfig{}})
	},
}

var notifyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored reminder schedule",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, cleanup, err := openService()
		if err != nil {
			fmt.Fprintln(os.Stderr, "notify show:", err)
			os.Exit(exitSysError)
		}
		defer cleanup()

		cfg, err := svc.NotifyConfig(currentUser)
		if err != nil {
			exitCommandError("notify show", err)
		}

		text := "🔕 Напоминания выключены."
		if cfg.Enabled {
			text = fmt.Sprintf("🔔 Напоминания: утро %s, вечер %s.", cfg.MorningAt, cfg.EveningAt)
		}
		printReply(&service.Reply{Text: text, Payload: cfg})
	},
}

func init() {
	notifyOnCmd.Flags().StringVar(&notifyMorning, "morning", "08:00", "morning reminder time (ЧЧ:ММ)")
	notifyOnCmd.Flags().StringVar(&notifyEvening, "evening", "21:00", "evening reminder time (ЧЧ:ММ)")

	notifyCmd.AddCommand(notifyOnCmd)
	notifyCmd.AddCommand(notifyOffCmd)
	notifyCmd.AddCommand(notifyShowCmd)
}
