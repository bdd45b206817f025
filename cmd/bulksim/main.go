// Command bulksim simulates a bulk-arrival / bulk-service queue cycle by
// cycle and reports steady-state estimates.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bulksim",
	Short: "Cycle simulator for bulk-arrival / bulk-service queues",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(distCmd)
}
