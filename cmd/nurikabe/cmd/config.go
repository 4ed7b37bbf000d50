package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurikabe-dev/nurikabe"
)

var configFileFlag string

// configCmd prints the effective engine tunables after loading an
// optional YAML config file, falling back to nurikabe.DefaultConfig.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "print the effective engine tunables",
	Long: `Print the solver's effective tunables (maxRemaining, maxSolutions).

Without --config, the built-in defaults are shown.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := nurikabe.DefaultConfig()
		if configFileFlag != "" {
			check(fileExists(configFileFlag))
			var err error
			cfg, err = nurikabe.LoadConfig(configFileFlag)
			check(err)
		}
		fmt.Printf("maxRemaining: %d\n", cfg.MaxRemaining)
		fmt.Printf("maxSolutions: %d\n", cfg.MaxSolutions)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVar(&configFileFlag, "config", "", "YAML tunables file")
}
