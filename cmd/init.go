package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/kitchen-finder/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize kitchenfinder configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the kitchen API base URL and search defaults, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Start from whatever is already on disk or in the environment.
		base, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		_, err = config.RunWizard(cfgFile, base)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
