// Reopen command discards a closed day and reseeds a fresh plan.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/service"
)

var reopenDate string

var reopenCmd = &cobra.Command{
	Use:   "reopen",
	Short: "Reopen a day with a fresh default plan",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("reopen", service.ReopenDay{Date: reopenDate})
	},
}

func init() {
	reopenCmd.Flags().StringVar(&reopenDate, "date", "", "reopen the plan for an explicit date (default: today)")
}
