// Backlog commands: the triage view plus the four triage decisions.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/engine"
	"github.com/mesh-intelligence/dayplan/internal/service"
)

var backlogCmd = &cobra.Command{
	Use:   "backlog",
	Short: "Show the backlog and triage its items",
	Long: `Backlog lists parked tasks with their age and carry history.

Each item is triaged with one of the subcommands:
  planner backlog return 2
  planner backlog move 2 2026-09-15
  planner backlog delete 2
  planner backlog reword 2 новый текст`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("backlog", service.ShowBacklog{})
	},
}

var backlogReturnCmd = &cobra.Command{
	Use:   "return <id>",
	Short: "Return a backlog item to today's plan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("backlog return", service.TriageBacklog{
			ItemID: parseID(args[0]),
			Action: engine.ReturnToToday{},
		})
	},
}

var backlogMoveCmd = &cobra.Command{
	Use:   "move <id> <date>",
	Short: "Move a backlog item to the plan for a date",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("backlog move", service.TriageBacklog{
			ItemID: parseID(args[0]),
			Action: engine.MoveToDate{Date: args[1]},
		})
	},
}

var backlogDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a backlog item for good",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("backlog delete", service.TriageBacklog{
			ItemID: parseID(args[0]),
			Action: engine.DeleteItem{},
		})
	},
}

var backlogRewordCmd = &cobra.Command{
	Use:   "reword <id> <text>...",
	Short: "Rephrase a backlog item in place",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("backlog reword", service.TriageBacklog{
			ItemID: parseID(args[0]),
			Action: engine.Reword{Text: strings.Join(args[1:], " ")},
		})
	},
}

func init() {
	backlogCmd.AddCommand(backlogReturnCmd)
	backlogCmd.AddCommand(backlogMoveCmd)
	backlogCmd.AddCommand(backlogDeleteCmd)
	backlogCmd.AddCommand(backlogRewordCmd)
}
