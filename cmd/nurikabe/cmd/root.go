package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "nurikabe",
	Short: "solve Nurikabe puzzles",
	Long: `nurikabe is the command-line front end for the Nurikabe solver core:
	- solve a puzzle read from a text file,
	- print the effective engine tunables (YAML config).`,
}

// Execute adds all child commands to the root command and runs it. This is
// called by main.main(); it only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
