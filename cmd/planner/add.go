// Add command appends a task to today, tomorrow, an explicit date, or
// the backlog.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/internal/service"
)

var (
	addTomorrow bool
	addDate     string
	addBacklog  bool
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a task",
	Long: `Add appends a task to today's plan by default.

Example:
  planner add позвонить в банк
  planner add --tomorrow купить билеты
  planner add --date 2026-09-15 продлить паспорт
  planner add --backlog разобрать фотоархив`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand("add", service.AddTask{
			Dest: addDestination(),
			Text: strings.Join(args, " "),
		})
	},
}

func init() {
	addCmd.Flags().BoolVar(&addTomorrow, "tomorrow", false, "add to tomorrow's plan")
	addCmd.Flags().StringVar(&addDate, "date", "", "add to the plan for an explicit date (ГГГГ-ММ-ДД)")
	addCmd.Flags().BoolVar(&addBacklog, "backlog", false, "park in the backlog")
}

// addDestination resolves the destination flags, exiting when more than
// one is set.
func addDestination() service.Destination {
	set := 0
	if addTomorrow {
		set++
	}
	if addDate != "" {
		set++
	}
	if addBacklog {
		set++
	}
	if set > 1 {
		fmt.Fprintln(os.Stderr, "add: choose one of --tomorrow, --date, --backlog")
		os.Exit(exitUserError)
	}

	switch {
	case addTomorrow:
		return service.Tomorrow{}
	case addDate != "":
		return service.OnDate{Date: addDate}
	case addBacklog:
		return service.ToBacklog{}
	}
	return service.Today{}
}
