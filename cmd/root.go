package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/kitchen-finder/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kitchenfinder",
	Short: "Cloud kitchen search page",
	Long: `Kitchen Finder serves a search page for cloud kitchens. Results are
fetched from the configured kitchen API and shown as a grid of cards.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
