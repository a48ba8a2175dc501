// Version command for the planner CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayplan/pkg/dayplan"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the planner version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("planner", dayplan.Version)
	},
}
