// Today command shows (and on first use seeds) today's plan.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/service"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's plan",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("today", service.ShowToday{})
	},
}
