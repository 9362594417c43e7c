// Package cmd - rates commands
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"payment-cost/core/rates"
	"payment-cost/internal/config"
)

// ratesCmd manages the rate table
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Inspect and seed the fee schedule",
}

// ratesShowCmd prints the effective rate table
var ratesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective rate table as JSON",
	Long: `Print the rate table the engine would use: built-in defaults with the
configured override file applied, or the file given with --rates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadRates()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	},
}

// ratesInitCmd seeds a rates file with the defaults
var ratesInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default rate table to a file for editing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Get().RatesPath
		if len(args) > 0 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("refusing to overwrite existing rates file: %s", path)
		}
		if err := rates.Default().Save(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default rates to %s\n", path)
		return nil
	},
}

func init() {
	ratesShowCmd.Flags().StringVar(&ratesFile, "rates", "", "rates override file (JSON or HCL)")
	ratesCmd.AddCommand(ratesShowCmd)
	ratesCmd.AddCommand(ratesInitCmd)
}
