// Package main provides the planner CLI, a local-first daily planning
// assistant: a seeded plan for today, an evening close that carries
// leftovers forward, a backlog for chronic procrastination, habits, and
// reminders.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
