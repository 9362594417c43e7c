// Package rates holds the fee schedule for both payment strategies.
// A Table is immutable at evaluation time; user overrides are applied by
// building a new Table from Default() plus an Overrides set.
package rates

import "github.com/shopspring/decimal"

// Accountancy groups the accountant and per-region compliance fees, in GBP.
type Accountancy struct {
	// BaseAnnualAccountantFee is the flat annual fee for basic accounting,
	// paid under both strategies
	BaseAnnualAccountantFee decimal.Decimal `json:"base_annual_accountant_fee"`

	// MonthlyEUVatFee covers all EU VAT OSS work
	MonthlyEUVatFee decimal.Decimal `json:"monthly_eu_vat_fee"`

	// MonthlyUKVatFee covers all UK VAT work
	MonthlyUKVatFee decimal.Decimal `json:"monthly_uk_vat_fee"`

	// MonthlyUSSalesTaxFee covers US sales tax work, per registered state
	MonthlyUSSalesTaxFee decimal.Decimal `json:"monthly_us_sales_tax_fee"`

	// OneOffRegistrationFee is a one-time registration outlay reported
	// alongside the direct strategy but never added to its totals
	OneOffRegistrationFee decimal.Decimal `json:"one_off_registration_fee"`
}

// Direct groups the direct-processor fee schedule, in GBP.
type Direct struct {
	// DomesticRate applies to UK domestic cards
	DomesticRate decimal.Decimal `json:"domestic_rate"`

	// DomesticFixedFee is the per-transaction fee for UK cards
	DomesticFixedFee decimal.Decimal `json:"domestic_fixed_fee"`

	// EuropeanRate applies to EU cards
	EuropeanRate decimal.Decimal `json:"european_rate"`

	// EuropeanFixedFee is the per-transaction fee for EU cards
	EuropeanFixedFee decimal.Decimal `json:"european_fixed_fee"`

	// NonEuropeanRate applies to US and rest-of-world cards
	NonEuropeanRate decimal.Decimal `json:"non_european_rate"`

	// NonEuropeanFixedFee is the per-transaction fee for non-European cards
	NonEuropeanFixedFee decimal.Decimal `json:"non_european_fixed_fee"`

	// SubscriptionSurchargeRate applies to subscription revenue
	SubscriptionSurchargeRate decimal.Decimal `json:"subscription_surcharge_rate"`

	// TaxServiceRate is the processor's tax-calculation fee on turnover
	TaxServiceRate decimal.Decimal `json:"tax_service_rate"`

	// ChargebackFee is charged per chargeback
	ChargebackFee decimal.Decimal `json:"chargeback_fee"`

	// DisputeFee is charged per dispute
	DisputeFee decimal.Decimal `json:"dispute_fee"`
}

// MoR groups the merchant-of-record fee schedule, in USD.
type MoR struct {
	// PlatformRate is the bundled platform percentage on turnover
	PlatformRate decimal.Decimal `json:"platform_rate"`

	// PlatformFixedFee is the per-transaction platform fee
	PlatformFixedFee decimal.Decimal `json:"platform_fixed_fee"`

	// InternationalRate applies to non-US revenue
	InternationalRate decimal.Decimal `json:"international_rate"`

	// SubscriptionSurchargeRate applies to subscription revenue
	SubscriptionSurchargeRate decimal.Decimal `json:"subscription_surcharge_rate"`

	// PayoutRate is charged on turnover at payout
	PayoutRate decimal.Decimal `json:"payout_rate"`
}

// Assumptions groups modeling assumptions shared by both strategies.
type Assumptions struct {
	// ChargebackRate is the assumed chargebacks per transaction
	ChargebackRate decimal.Decimal `json:"chargeback_rate"`

	// DisputeRate is the assumed disputes per transaction
	DisputeRate decimal.Decimal `json:"dispute_rate"`

	// USDToGBPRate converts MoR amounts into GBP for comparison
	USDToGBPRate decimal.Decimal `json:"usd_to_gbp_rate"`
}

// Table is the complete fee schedule consumed by the cost engine.
type Table struct {
	Accountancy Accountancy `json:"accountancy"`
	Direct      Direct      `json:"direct"`
	MoR         MoR         `json:"mor"`
	Assumptions Assumptions `json:"assumptions"`
}

func init() {
	// Rate files are plain numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// Default returns the documented default fee schedule. Direct rates are UK
// card-network rates as of 2024; MoR rates model a bundled platform.
func Default() *Table {
	return &Table{
		Accountancy: Accountancy{
			BaseAnnualAccountantFee: d(500),  // £500/year basic accounting
			MonthlyEUVatFee:         d(200),  // £200/month EU VAT OSS work
			MonthlyUKVatFee:         d(120),  // £120/month UK VAT work
			MonthlyUSSalesTaxFee:    d(160),  // £160/month per US state
			OneOffRegistrationFee:   d(0),
		},
		Direct: Direct{
			DomesticRate:              d(0.015),  // 1.5% UK domestic cards
			DomesticFixedFee:          d(0.20),   // £0.20 per transaction
			EuropeanRate:              d(0.025),  // 2.5% European cards
			EuropeanFixedFee:          d(0.20),
			NonEuropeanRate:           d(0.0325), // 3.25% non-European cards
			NonEuropeanFixedFee:       d(0.20),
			SubscriptionSurchargeRate: d(0.007),  // 0.7% on subscriptions
			TaxServiceRate:            d(0.005),  // 0.5% tax service
			ChargebackFee:             d(15),     // £15 per chargeback
			DisputeFee:                d(15),     // £15 per dispute
		},
		MoR: MoR{
			PlatformRate:              d(0.05),  // 5% platform fee
			PlatformFixedFee:          d(0.50),  // $0.50 per transaction
			InternationalRate:         d(0.015), // 1.5% outside the US
			SubscriptionSurchargeRate: d(0.005), // 0.5% on subscriptions
			PayoutRate:                d(0.01),  // 1% of payout amount
		},
		Assumptions: Assumptions{
			ChargebackRate: d(0.006), // 0.6% of transactions
			DisputeRate:    d(0.002), // 0.2% of transactions
			USDToGBPRate:   d(0.79),
		},
	}
}
