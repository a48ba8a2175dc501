// Remove command deletes tasks from a day's plan by id.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/service"
)

var removeDate string

var removeCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Remove tasks from a day's plan",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ids := make([]int, 0, len(args))
		for _, arg := range args {
			ids = append(ids, parseID(arg))
		}
		runCommand("remove", service.RemoveTasks{Date: removeDate, IDs: ids})
	},
}

func init() {
	removeCmd.Flags().StringVar(&removeDate, "date", "", "remove from the plan for an explicit date (default: today)")
}
