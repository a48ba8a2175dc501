// Watch command runs the reminder loop in the foreground, delivering
// the configured morning and evening texts to stdout.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/notify"
	"github.com/mesh-intelligence/dayplan/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run reminders in the foreground until interrupted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, cleanup, err := openService()
		if err != nil {
			fmt.Fprintln(os.Stderr, "watch:", err)
			os.Exit(exitSysError)
		}
		defer cleanup()

		cfg, err := svc.NotifyConfig(currentUser)
		if err != nil {
			exitCommandError("watch", err)
		}
		if !cfg.Enabled {
			fmt.Fprintln(os.Stderr, "Напоминания выключены. Включить: planner notify on")
			os.Exit(exitUserError)
		}

		sched := notify.New(svc, func(userID, text string) {
			fmt.Println(text)
		}, types.SystemClock(), time.Minute)
		defer sched.Stop()
		sched.Enable(currentUser, cfg)

		fmt.Printf("🔔 Слежу за расписанием: утро %s, вечер %s. Ctrl+C для выхода.\n", cfg.MorningAt, cfg.EveningAt)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}
