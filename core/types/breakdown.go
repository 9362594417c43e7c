// Package types - strategy cost breakdowns
package types

import "github.com/shopspring/decimal"

// Component is a single named monthly fee line item.
type Component struct {
	// Key is a stable machine identifier
	Key string `json:"key"`

	// Label is a human-readable label
	Label string `json:"label"`

	// Amount is the monthly cost in the breakdown's currency
	Amount decimal.Decimal `json:"amount"`
}

// DirectBreakdown itemizes the monthly cost of the direct-processor strategy.
// All amounts are denominated in GBP. The sum of Components() equals
// TotalMonthlyCost exactly; reporting-only fields (AnnualComplianceCost,
// OneOffRegistrationCost) are excluded from the totals.
type DirectBreakdown struct {
	// Currency is always GBP for this strategy
	Currency Currency `json:"currency"`

	// BaseProcessingFees covers the UK domestic card bucket
	BaseProcessingFees decimal.Decimal `json:"base_processing_fees"`

	// EuropeanFees covers the EU card bucket
	EuropeanFees decimal.Decimal `json:"european_fees"`

	// NonDomesticFees covers US and rest-of-world cards at the
	// non-European rate, reported as one component
	NonDomesticFees decimal.Decimal `json:"non_domestic_fees"`

	// SubscriptionSurcharge is the recurring-billing surcharge
	SubscriptionSurcharge decimal.Decimal `json:"subscription_surcharge"`

	// TaxServiceSurcharge is the processor's flat tax-calculation fee on
	// turnover, charged regardless of registration flags
	TaxServiceSurcharge decimal.Decimal `json:"tax_service_surcharge"`

	// ChargebackFees is the expected chargeback cost (manual toggle)
	ChargebackFees decimal.Decimal `json:"chargeback_fees"`

	// DisputeFees is the expected dispute cost (always included)
	DisputeFees decimal.Decimal `json:"dispute_fees"`

	// TaxComplianceCost sums the per-region accountancy compliance fees
	// switched on by the compliance flags
	TaxComplianceCost decimal.Decimal `json:"tax_compliance_cost"`

	// AccountantFee is the flat base accountancy fee, averaged monthly
	AccountantFee decimal.Decimal `json:"accountant_fee"`

	// TotalMonthlyCost is the sum of all components above
	TotalMonthlyCost decimal.Decimal `json:"total_monthly_cost"`

	// TotalAnnualCost is TotalMonthlyCost * 12
	TotalAnnualCost decimal.Decimal `json:"total_annual_cost"`

	// AnnualComplianceCost is TaxComplianceCost * 12 (reporting only)
	AnnualComplianceCost decimal.Decimal `json:"annual_compliance_cost"`

	// OneOffRegistrationCost is a one-time registration outlay, reported
	// separately and never folded into the monthly or annual totals
	OneOffRegistrationCost decimal.Decimal `json:"one_off_registration_cost"`

	// MonthlyTurnover is unit amount * volume
	MonthlyTurnover decimal.Decimal `json:"monthly_turnover"`

	// AnnualTurnover is MonthlyTurnover * 12
	AnnualTurnover decimal.Decimal `json:"annual_turnover"`

	// MonthlyProfit is MonthlyTurnover - TotalMonthlyCost
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`

	// AnnualProfit is AnnualTurnover - TotalAnnualCost
	AnnualProfit decimal.Decimal `json:"annual_profit"`
}

// Components returns the itemized monthly fee lines. Their sum reconciles to
// TotalMonthlyCost.
func (b *DirectBreakdown) Components() []Component {
	return []Component{
		{Key: "base_processing_fees", Label: "UK processing fees", Amount: b.BaseProcessingFees},
		{Key: "european_fees", Label: "European card fees", Amount: b.EuropeanFees},
		{Key: "non_domestic_fees", Label: "US & rest-of-world fees", Amount: b.NonDomesticFees},
		{Key: "subscription_surcharge", Label: "Subscription surcharge", Amount: b.SubscriptionSurcharge},
		{Key: "tax_service_surcharge", Label: "Tax service surcharge", Amount: b.TaxServiceSurcharge},
		{Key: "chargeback_fees", Label: "Chargeback fees", Amount: b.ChargebackFees},
		{Key: "dispute_fees", Label: "Dispute fees", Amount: b.DisputeFees},
		{Key: "tax_compliance_cost", Label: "Tax compliance", Amount: b.TaxComplianceCost},
		{Key: "accountant_fee", Label: "Accountancy (base)", Amount: b.AccountantFee},
	}
}

// MoRBreakdown itemizes the monthly cost of the merchant-of-record strategy.
// All amounts are denominated in USD; conversion into GBP for comparison
// happens only in the curve and presentation layers.
type MoRBreakdown struct {
	// Currency is always USD for this strategy
	Currency Currency `json:"currency"`

	// PlatformFee is the bundled platform percentage plus per-transaction
	// fixed fee; tax compliance, chargebacks and disputes are absorbed here
	PlatformFee decimal.Decimal `json:"platform_fee"`

	// InternationalFees covers the non-US bucket
	InternationalFees decimal.Decimal `json:"international_fees"`

	// SubscriptionSurcharge is the recurring-billing surcharge
	SubscriptionSurcharge decimal.Decimal `json:"subscription_surcharge"`

	// PayoutFee is charged on turnover at payout time
	PayoutFee decimal.Decimal `json:"payout_fee"`

	// AccountantFee is the same flat base accountancy fee as the direct
	// strategy, averaged monthly
	AccountantFee decimal.Decimal `json:"accountant_fee"`

	// TotalMonthlyCost is the sum of all components above
	TotalMonthlyCost decimal.Decimal `json:"total_monthly_cost"`

	// TotalAnnualCost is TotalMonthlyCost * 12
	TotalAnnualCost decimal.Decimal `json:"total_annual_cost"`

	// MonthlyTurnover is unit amount * volume
	MonthlyTurnover decimal.Decimal `json:"monthly_turnover"`

	// AnnualTurnover is MonthlyTurnover * 12
	AnnualTurnover decimal.Decimal `json:"annual_turnover"`

	// MonthlyProfit is MonthlyTurnover - TotalMonthlyCost
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`

	// AnnualProfit is AnnualTurnover - TotalAnnualCost
	AnnualProfit decimal.Decimal `json:"annual_profit"`
}

// Components returns the itemized monthly fee lines. Their sum reconciles to
// TotalMonthlyCost.
func (b *MoRBreakdown) Components() []Component {
	return []Component{
		{Key: "platform_fee", Label: "Platform fee", Amount: b.PlatformFee},
		{Key: "international_fees", Label: "International fees", Amount: b.InternationalFees},
		{Key: "subscription_surcharge", Label: "Subscription surcharge", Amount: b.SubscriptionSurcharge},
		{Key: "payout_fee", Label: "Payout fee", Amount: b.PayoutFee},
		{Key: "accountant_fee", Label: "Accountancy (base)", Amount: b.AccountantFee},
	}
}

// SumComponents totals a component list.
func SumComponents(components []Component) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		total = total.Add(c.Amount)
	}
	return total
}
