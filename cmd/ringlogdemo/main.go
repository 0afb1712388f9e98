// Command ringlogdemo drives a ringlog.Buffer from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ringlogdemo",
	Short: "ringlogdemo drives a ringlog buffer from the command line",
	Long:  "ringlogdemo spawns producers against an in-memory ringlog.Buffer and prints the event stream replayed by a consumer.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
