// Package cmd provides the command-line interface for tlbsim.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// The root command simulates too, so "tlbsim trace.txt" works. "run" is the
// same command under a name, for trace files whose name is a subcommand.
func newRootCmd() *cobra.Command {
	cmd := newSimulateCmd("tlbsim [trace]")
	cmd.AddCommand(newSimulateCmd("run [trace]"))
	cmd.AddCommand(newRecordsCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
