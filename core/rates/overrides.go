// Package rates - partial override merging
package rates

import "github.com/shopspring/decimal"

// Overrides is a partial fee schedule. Nil group pointers and nil fields keep
// the defaults; set fields replace them. The merge is per-field within each
// top-level group, matching the persisted flat shape of a user-edited table.
// The same struct serves the JSON request surface and the HCL rates file.
type Overrides struct {
	Accountancy *AccountancyOverrides `json:"accountancy,omitempty" hcl:"accountancy,block"`
	Direct      *DirectOverrides      `json:"direct,omitempty" hcl:"direct,block"`
	MoR         *MoROverrides         `json:"mor,omitempty" hcl:"mor,block"`
	Assumptions *AssumptionsOverrides `json:"assumptions,omitempty" hcl:"assumptions,block"`
}

// AccountancyOverrides overrides the accountancy group.
type AccountancyOverrides struct {
	BaseAnnualAccountantFee *float64 `json:"base_annual_accountant_fee,omitempty" hcl:"base_annual_accountant_fee,optional"`
	MonthlyEUVatFee         *float64 `json:"monthly_eu_vat_fee,omitempty" hcl:"monthly_eu_vat_fee,optional"`
	MonthlyUKVatFee         *float64 `json:"monthly_uk_vat_fee,omitempty" hcl:"monthly_uk_vat_fee,optional"`
	MonthlyUSSalesTaxFee    *float64 `json:"monthly_us_sales_tax_fee,omitempty" hcl:"monthly_us_sales_tax_fee,optional"`
	OneOffRegistrationFee   *float64 `json:"one_off_registration_fee,omitempty" hcl:"one_off_registration_fee,optional"`
}

// DirectOverrides overrides the direct-processor group.
type DirectOverrides struct {
	DomesticRate              *float64 `json:"domestic_rate,omitempty" hcl:"domestic_rate,optional"`
	DomesticFixedFee          *float64 `json:"domestic_fixed_fee,omitempty" hcl:"domestic_fixed_fee,optional"`
	EuropeanRate              *float64 `json:"european_rate,omitempty" hcl:"european_rate,optional"`
	EuropeanFixedFee          *float64 `json:"european_fixed_fee,omitempty" hcl:"european_fixed_fee,optional"`
	NonEuropeanRate           *float64 `json:"non_european_rate,omitempty" hcl:"non_european_rate,optional"`
	NonEuropeanFixedFee       *float64 `json:"non_european_fixed_fee,omitempty" hcl:"non_european_fixed_fee,optional"`
	SubscriptionSurchargeRate *float64 `json:"subscription_surcharge_rate,omitempty" hcl:"subscription_surcharge_rate,optional"`
	TaxServiceRate            *float64 `json:"tax_service_rate,omitempty" hcl:"tax_service_rate,optional"`
	ChargebackFee             *float64 `json:"chargeback_fee,omitempty" hcl:"chargeback_fee,optional"`
	DisputeFee                *float64 `json:"dispute_fee,omitempty" hcl:"dispute_fee,optional"`
}

// MoROverrides overrides the merchant-of-record group.
type MoROverrides struct {
	PlatformRate              *float64 `json:"platform_rate,omitempty" hcl:"platform_rate,optional"`
	PlatformFixedFee          *float64 `json:"platform_fixed_fee,omitempty" hcl:"platform_fixed_fee,optional"`
	InternationalRate         *float64 `json:"international_rate,omitempty" hcl:"international_rate,optional"`
	SubscriptionSurchargeRate *float64 `json:"subscription_surcharge_rate,omitempty" hcl:"subscription_surcharge_rate,optional"`
	PayoutRate                *float64 `json:"payout_rate,omitempty" hcl:"payout_rate,optional"`
}

// AssumptionsOverrides overrides the shared assumptions group.
type AssumptionsOverrides struct {
	ChargebackRate *float64 `json:"chargeback_rate,omitempty" hcl:"chargeback_rate,optional"`
	DisputeRate    *float64 `json:"dispute_rate,omitempty" hcl:"dispute_rate,optional"`
	USDToGBPRate   *float64 `json:"usd_to_gbp_rate,omitempty" hcl:"usd_to_gbp_rate,optional"`
}

func override(target *decimal.Decimal, value *float64) {
	if value != nil {
		*target = decimal.NewFromFloat(*value)
	}
}

// Apply returns a copy of the table with the overrides merged in.
// The receiver is not modified.
func (t Table) Apply(o *Overrides) *Table {
	if o == nil {
		return &t
	}
	if a := o.Accountancy; a != nil {
		override(&t.Accountancy.BaseAnnualAccountantFee, a.BaseAnnualAccountantFee)
		override(&t.Accountancy.MonthlyEUVatFee, a.MonthlyEUVatFee)
		override(&t.Accountancy.MonthlyUKVatFee, a.MonthlyUKVatFee)
		override(&t.Accountancy.MonthlyUSSalesTaxFee, a.MonthlyUSSalesTaxFee)
		override(&t.Accountancy.OneOffRegistrationFee, a.OneOffRegistrationFee)
	}
	if dr := o.Direct; dr != nil {
		override(&t.Direct.DomesticRate, dr.DomesticRate)
		override(&t.Direct.DomesticFixedFee, dr.DomesticFixedFee)
		override(&t.Direct.EuropeanRate, dr.EuropeanRate)
		override(&t.Direct.EuropeanFixedFee, dr.EuropeanFixedFee)
		override(&t.Direct.NonEuropeanRate, dr.NonEuropeanRate)
		override(&t.Direct.NonEuropeanFixedFee, dr.NonEuropeanFixedFee)
		override(&t.Direct.SubscriptionSurchargeRate, dr.SubscriptionSurchargeRate)
		override(&t.Direct.TaxServiceRate, dr.TaxServiceRate)
		override(&t.Direct.ChargebackFee, dr.ChargebackFee)
		override(&t.Direct.DisputeFee, dr.DisputeFee)
	}
	if m := o.MoR; m != nil {
		override(&t.MoR.PlatformRate, m.PlatformRate)
		override(&t.MoR.PlatformFixedFee, m.PlatformFixedFee)
		override(&t.MoR.InternationalRate, m.InternationalRate)
		override(&t.MoR.SubscriptionSurchargeRate, m.SubscriptionSurchargeRate)
		override(&t.MoR.PayoutRate, m.PayoutRate)
	}
	if a := o.Assumptions; a != nil {
		override(&t.Assumptions.ChargebackRate, a.ChargebackRate)
		override(&t.Assumptions.DisputeRate, a.DisputeRate)
		override(&t.Assumptions.USDToGBPRate, a.USDToGBPRate)
	}
	return &t
}
