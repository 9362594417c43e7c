// Package cmd - estimate command
package cmd

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payment-cost/core/engine"
	"payment-cost/core/output"
	"payment-cost/core/policy"
	"payment-cost/core/rates"
	"payment-cost/core/types"
	"payment-cost/internal/config"
	"payment-cost/internal/logging"
)

var (
	unitAmount     float64
	monthlyVolume  int64
	euShare        int
	usShare        int
	subShare       int
	subAmount      float64
	autoThresholds bool
	euVat          bool
	ukVat          bool
	usSalesTax     bool
	nexusCount     int
	chargebacks    bool
	ratesFile      string
	outputFormat   string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Compare both strategies for one transaction mix",
	Long: `Evaluate the direct-processor and merchant-of-record strategies for a
single transaction mix and print itemized breakdowns.

Compliance flags can be set manually (--eu-vat, --uk-vat, --us-sales-tax) or
derived from the mix with --auto-thresholds. Chargeback inclusion is always a
manual choice (--chargebacks).

Examples:
  payment-cost estimate --amount 50 --volume 1000 --eu 30 --us 25
  payment-cost estimate --auto-thresholds --sub-share 40 --sub-amount 30
  payment-cost estimate --rates rates.hcl --format json`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().Float64Var(&unitAmount, "amount", 50, "blended average transaction amount in GBP")
	estimateCmd.Flags().Int64Var(&monthlyVolume, "volume", 1000, "transactions per month")
	estimateCmd.Flags().IntVar(&euShare, "eu", 30, "EU share of transactions, percent")
	estimateCmd.Flags().IntVar(&usShare, "us", 25, "US share of transactions, percent")
	estimateCmd.Flags().IntVar(&subShare, "sub-share", 0, "subscription share of transactions, percent")
	estimateCmd.Flags().Float64Var(&subAmount, "sub-amount", 30, "average subscription amount in GBP")
	estimateCmd.Flags().BoolVar(&autoThresholds, "auto-thresholds", false, "derive compliance flags from the mix")
	estimateCmd.Flags().BoolVar(&euVat, "eu-vat", false, "EU VAT OSS registration in place")
	estimateCmd.Flags().BoolVar(&ukVat, "uk-vat", false, "UK VAT registration in place")
	estimateCmd.Flags().BoolVar(&usSalesTax, "us-sales-tax", false, "US sales tax compliance in place")
	estimateCmd.Flags().IntVar(&nexusCount, "nexus-count", 1, "US states registered for sales tax")
	estimateCmd.Flags().BoolVar(&chargebacks, "chargebacks", false, "include expected chargeback fees")
	estimateCmd.Flags().StringVar(&ratesFile, "rates", "", "rates override file (JSON or HCL)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
}

func buildProfile() types.TransactionProfile {
	return types.TransactionProfile{
		UnitAmount:             decimal.NewFromFloat(unitAmount),
		MonthlyVolume:          monthlyVolume,
		EuropeanSharePct:       euShare,
		USSharePct:             usShare,
		SubscriptionSharePct:   subShare,
		SubscriptionUnitAmount: decimal.NewFromFloat(subAmount),
	}
}

func loadRates() (*rates.Table, error) {
	if ratesFile != "" {
		return rates.Load(ratesFile)
	}
	return rates.Load(config.Get().RatesPath)
}

func resolveFormat() output.Format {
	if outputFormat != "" {
		return output.Format(outputFormat)
	}
	return output.Format(config.Get().Output.DefaultFormat)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	table, err := loadRates()
	if err != nil {
		return err
	}

	profile := buildProfile()

	var flags types.ComplianceFlags
	if autoThresholds {
		flags = policy.DeriveFlags(profile)
		logging.Debug("derived compliance flags",
			zap.Bool("eu_vat", flags.EUVatRequired),
			zap.Bool("uk_vat", flags.UKVatRequired),
			zap.Bool("us_sales_tax", flags.USSalesTaxRequired),
			zap.Int("nexus_count", flags.NexusCount))
	} else {
		flags = types.ComplianceFlags{
			EUVatRequired:      euVat,
			UKVatRequired:      ukVat,
			USSalesTaxRequired: usSalesTax,
			NexusCount:         nexusCount,
		}.Normalize()
	}

	opts := engine.Options{IncludeChargebacks: chargebacks}

	direct, err := engine.EvaluateDirect(profile, flags, opts, table)
	if err != nil {
		return err
	}
	mor, err := engine.EvaluateMoR(profile, table)
	if err != nil {
		return err
	}

	result := output.NewComparison(profile, flags, direct, mor, table.Assumptions.USDToGBPRate)

	formatter, err := output.NewFormatter(resolveFormat())
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, result)
}
