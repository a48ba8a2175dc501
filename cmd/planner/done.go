// Done command marks one of today's tasks as completed.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/service"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task in today's plan as done",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("done", service.MarkTaskDone{TaskID: parseID(args[0])})
	},
}
