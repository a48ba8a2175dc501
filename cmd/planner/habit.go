// Habit commands: defining habits, ticking the daily tri-state, and the
// month grid.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/service"
)

var (
	habitToggleDate string
	habitGridMonth  string
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Track daily habits",
	Long: `Habit tracks a small set of daily habits alongside the plan.

Each day a habit is unset, done, or missed; toggle cycles through the
three states. The grid shows one month at a glance.

Example:
  planner habit add sport Спорт
  planner habit toggle sport
  planner habit grid`,
}

var habitAddCmd = &cobra.Command{
	Use:   "add <key> <title>...",
	Short: "Define a new habit",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("habit add", service.AddHabit{
			Key:   args[0],
			Title: strings.Join(args[1:], " "),
		})
	},
}

var habitRemoveCmd = &cobra.Command{
	Use:   "remove <key>",
	Short: "Drop a habit definition (history stays)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("habit remove", service.RemoveHabit{Key: args[0]})
	},
}

var habitToggleCmd = &cobra.Command{
	Use:   "toggle <key>",
	Short: "Cycle a habit through unset, done, missed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("habit toggle", service.ToggleHabit{
			Date: habitToggleDate,
			Key:  args[0],
		})
	},
}

var habitGridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Show the habit grid for a month",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("habit grid", service.ShowHabits{Date: habitGridMonth})
	},
}

func init() {
	habitToggleCmd.Flags().StringVar(&habitToggleDate, "date", "", "toggle for an explicit date (default: today)")
	habitGridCmd.Flags().StringVar(&habitGridMonth, "month", "", "any date inside the month to show (default: current month)")

	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitRemoveCmd)
	habitCmd.AddCommand(habitToggleCmd)
	habitCmd.AddCommand(habitGridCmd)
}
