// Close command finishes the day: it produces the evening report,
// carries undone tasks to tomorrow, and demotes chronic ones into the
// backlog.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/service"
)

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close today and get the evening report",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("close", service.CloseDay{})
	},
}
