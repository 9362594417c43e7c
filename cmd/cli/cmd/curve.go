// Package cmd - curve command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"payment-cost/core/curve"
	"payment-cost/core/engine"
	"payment-cost/core/output"
	"payment-cost/core/types"
)

var (
	maxTurnover float64
	steps       int
)

// curveCmd represents the curve command
var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Sweep the cost model across a turnover range",
	Long: `Evaluate both strategies at evenly spaced turnover levels and report
the comparison series plus the break-even turnover, if the curves cross.

Compliance flags are derived at each sample unless set manually, so
compliance fees switch on as samples cross the registration thresholds.

Examples:
  payment-cost curve --max-turnover 1000000 --amount 50
  payment-cost curve --steps 100 --eu 30 --us 25 --format json`,
	RunE: runCurve,
}

func init() {
	curveCmd.Flags().Float64Var(&maxTurnover, "max-turnover", 1000000, "top of the swept monthly turnover range in GBP")
	curveCmd.Flags().IntVar(&steps, "steps", curve.DefaultSteps, "number of sweep intervals")
	curveCmd.Flags().Float64Var(&unitAmount, "amount", 50, "average transaction amount used to imply volume")
	curveCmd.Flags().IntVar(&euShare, "eu", 30, "EU share of transactions, percent")
	curveCmd.Flags().IntVar(&usShare, "us", 25, "US share of transactions, percent")
	curveCmd.Flags().IntVar(&subShare, "sub-share", 0, "subscription share of transactions, percent")
	curveCmd.Flags().Float64Var(&subAmount, "sub-amount", 30, "average subscription amount in GBP")
	curveCmd.Flags().BoolVar(&autoThresholds, "auto-thresholds", true, "derive compliance flags at each sample")
	curveCmd.Flags().BoolVar(&euVat, "eu-vat", false, "EU VAT OSS registration in place")
	curveCmd.Flags().BoolVar(&ukVat, "uk-vat", false, "UK VAT registration in place")
	curveCmd.Flags().BoolVar(&usSalesTax, "us-sales-tax", false, "US sales tax compliance in place")
	curveCmd.Flags().IntVar(&nexusCount, "nexus-count", 1, "US states registered for sales tax")
	curveCmd.Flags().BoolVar(&chargebacks, "chargebacks", false, "include expected chargeback fees")
	curveCmd.Flags().StringVar(&ratesFile, "rates", "", "rates override file (JSON or HCL)")
	curveCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
}

func runCurve(cmd *cobra.Command, args []string) error {
	table, err := loadRates()
	if err != nil {
		return err
	}

	params := curve.Params{
		Flags: types.ComplianceFlags{
			EUVatRequired:      euVat,
			UKVatRequired:      ukVat,
			USSalesTaxRequired: usSalesTax,
			NexusCount:         nexusCount,
		}.Normalize(),
		DeriveFlags:            autoThresholds,
		Options:                engine.Options{IncludeChargebacks: chargebacks},
		EuropeanSharePct:       euShare,
		USSharePct:             usShare,
		SubscriptionSharePct:   subShare,
		SubscriptionUnitAmount: decimal.NewFromFloat(subAmount),
		MaxTurnover:            decimal.NewFromFloat(maxTurnover),
		UnitAmount:             decimal.NewFromFloat(unitAmount),
		Steps:                  steps,
	}

	points, err := curve.Sweep(params, table)
	if err != nil {
		return err
	}
	breakEven, crossed := curve.BreakEven(points)

	if resolveFormat() == output.FormatJSON {
		payload := struct {
			Points    []types.CurvePoint `json:"points"`
			BreakEven *decimal.Decimal   `json:"break_even,omitempty"`
		}{Points: points}
		if crossed {
			payload.BreakEven = &breakEven
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	printCurve(points, breakEven, crossed)
	return nil
}

func printCurve(points []types.CurvePoint, breakEven decimal.Decimal, crossed bool) {
	fmt.Println("┌──────────────────┬──────────────────┬──────────────────┐")
	fmt.Println("│   Turnover (£)   │  Direct cost (£) │   MoR cost (£)   │")
	fmt.Println("├──────────────────┼──────────────────┼──────────────────┤")
	for _, p := range points {
		fmt.Printf("│ %16s │ %16s │ %16s │\n",
			p.Turnover.StringFixed(0),
			p.DirectCost.StringFixed(2),
			p.MoRCost.StringFixed(2))
	}
	fmt.Println("└──────────────────┴──────────────────┴──────────────────┘")

	if crossed {
		fmt.Printf("\nBreak-even turnover: £%s/month\n", breakEven.StringFixed(0))
	} else {
		fmt.Println("\nNo break-even inside the swept range.")
	}
}
