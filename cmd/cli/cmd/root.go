// Package cmd provides the CLI commands for payment-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"payment-cost/internal/config"
	"payment-cost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "payment-cost",
	Short: "Compare payment-processing strategy costs",
	Long: `payment-cost models the monthly and annual cost of selling through a
direct card processor (per-transaction fees plus self-managed tax compliance)
versus a merchant of record (bundled platform fee).

Examples:
  payment-cost estimate --amount 50 --volume 1000 --eu 30 --us 25
  payment-cost estimate --auto-thresholds --format json
  payment-cost curve --max-turnover 1000000 --amount 50`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.payment-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(curveCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("payment-cost version 0.1.0")
	},
}
