// Package output - CLI table renderer
package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"payment-cost/core/types"
)

// CLIFormatter renders a comparison as a boxed terminal table.
type CLIFormatter struct {
	// ShowDetails includes the per-component fee lines
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the comparison table
func (f *CLIFormatter) Render(w io.Writer, result *ComparisonResult) error {
	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                     PAYMENT STRATEGY COST COMPARISON                    │")
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")

	fmt.Fprintf(w, "│ %-50s %20s │\n", "Monthly turnover",
		money(types.CurrencyGBP, result.Direct.MonthlyTurnover))
	fmt.Fprintf(w, "│ %-50s %20s │\n", "Monthly volume",
		fmt.Sprintf("%d txns", result.Profile.MonthlyVolume))

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	f.renderStrategy(w, "DIRECT PROCESSOR (GBP)", types.CurrencyGBP,
		result.Direct.Components(), result.Direct.TotalMonthlyCost, result.Direct.MonthlyProfit)

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	f.renderStrategy(w, "MERCHANT OF RECORD (USD)", types.CurrencyUSD,
		result.MoR.Components(), result.MoR.TotalMonthlyCost, result.MoR.MonthlyProfit)

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Fprintf(w, "│ %-50s %20s │\n", "MoR monthly cost (converted)",
		money(types.CurrencyGBP, result.MoRMonthlyCostGBP))
	label := "Monthly saving with MoR"
	saving := result.MonthlySaving
	if saving.IsNegative() {
		label = "Monthly saving with direct processor"
		saving = saving.Neg()
	}
	fmt.Fprintf(w, "│ %-50s %20s │\n", label, money(types.CurrencyGBP, saving))
	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")

	fmt.Fprintf(w, "\nCompliance: EU VAT %s, UK VAT %s, US sales tax %s (%d state(s))\n",
		onOff(result.Flags.EUVatRequired),
		onOff(result.Flags.UKVatRequired),
		onOff(result.Flags.USSalesTaxRequired),
		result.Flags.NexusCount)
	return nil
}

func (f *CLIFormatter) renderStrategy(w io.Writer, title string, currency types.Currency, components []types.Component, total, profit decimal.Decimal) {
	fmt.Fprintf(w, "│ %-71s │\n", title)
	if f.ShowDetails {
		for _, c := range components {
			if c.Amount.IsZero() {
				continue
			}
			fmt.Fprintf(w, "│   └─ %-46s %20s │\n", c.Label, money(currency, c.Amount))
		}
	}
	fmt.Fprintf(w, "│ %-50s %20s │\n", "Total monthly cost", money(currency, total))
	fmt.Fprintf(w, "│ %-50s %20s │\n", "Monthly profit", money(currency, profit))
}

func money(currency types.Currency, amount decimal.Decimal) string {
	return currency.Symbol() + amount.StringFixed(2)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
