// Package engine evaluates the two payment-processing strategies over a
// transaction profile and a rate table. Evaluations are pure: the same
// inputs always produce the same breakdown, and nothing is mutated.
package engine

import (
	"github.com/shopspring/decimal"

	"payment-cost/core/rates"
	"payment-cost/core/types"
)

// Options carries the manually controlled evaluation toggles. These are
// deliberately separate from types.ComplianceFlags, which are derived from
// the profile and recomputed on every change.
type Options struct {
	// IncludeChargebacks adds the expected chargeback cost to the direct
	// strategy
	IncludeChargebacks bool `json:"include_chargebacks"`
}

var twelve = decimal.NewFromInt(12)

const divScale = 16

// bucketFee prices a region bucket: per-transaction fixed fee plus a
// percentage of the bucket's revenue.
func bucketFee(txns, unitAmount, fixedFee, rate decimal.Decimal) decimal.Decimal {
	revenue := txns.Mul(unitAmount)
	return txns.Mul(fixedFee).Add(revenue.Mul(rate))
}

// EvaluateDirect prices the direct-processor strategy for a profile.
// All output amounts are in GBP.
//
// The monthly volume is partitioned into UK, EU and US buckets by the whole
// percentage shares; the UK bucket is the remainder, so the rest-of-world
// bucket left over after subtraction is identically zero and is folded into
// the non-domestic component.
func EvaluateDirect(profile types.TransactionProfile, flags types.ComplianceFlags, opts Options, table *rates.Table) (*types.DirectBreakdown, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		table = rates.Default()
	}
	flags = flags.Normalize()

	volume := profile.Volume()
	turnover := profile.MonthlyTurnover()

	euTxns := profile.ShareVolume(profile.EuropeanSharePct)
	usTxns := profile.ShareVolume(profile.USSharePct)
	ukTxns := volume.Sub(euTxns).Sub(usTxns)
	otherTxns := volume.Sub(ukTxns).Sub(euTxns).Sub(usTxns)

	baseProcessing := bucketFee(ukTxns, profile.UnitAmount, table.Direct.DomesticFixedFee, table.Direct.DomesticRate)
	european := bucketFee(euTxns, profile.UnitAmount, table.Direct.EuropeanFixedFee, table.Direct.EuropeanRate)
	nonDomestic := bucketFee(usTxns, profile.UnitAmount, table.Direct.NonEuropeanFixedFee, table.Direct.NonEuropeanRate).
		Add(bucketFee(otherTxns, profile.UnitAmount, table.Direct.NonEuropeanFixedFee, table.Direct.NonEuropeanRate))

	// Subscription surcharge is additive on top of the regional fees and is
	// computed on subscription revenue, not on any region bucket.
	subscriptionRevenue := profile.ShareVolume(profile.SubscriptionSharePct).Mul(profile.SubscriptionUnitAmount)
	subscriptionSurcharge := subscriptionRevenue.Mul(table.Direct.SubscriptionSurchargeRate)

	// The tax service fee applies to all turnover whether or not any
	// registration flag is set; it models the processor's tax tooling, not
	// the compliance work itself.
	taxService := turnover.Mul(table.Direct.TaxServiceRate)

	compliance := decimal.Zero
	if flags.EUVatRequired {
		compliance = compliance.Add(table.Accountancy.MonthlyEUVatFee)
	}
	if flags.UKVatRequired {
		compliance = compliance.Add(table.Accountancy.MonthlyUKVatFee)
	}
	if flags.USSalesTaxRequired {
		perState := table.Accountancy.MonthlyUSSalesTaxFee
		compliance = compliance.Add(perState.Mul(decimal.NewFromInt(int64(flags.NexusCount))))
	}

	chargebacks := decimal.Zero
	if opts.IncludeChargebacks {
		chargebacks = volume.Mul(table.Assumptions.ChargebackRate).Mul(table.Direct.ChargebackFee)
	}
	disputes := volume.Mul(table.Assumptions.DisputeRate).Mul(table.Direct.DisputeFee)

	accountant := table.Accountancy.BaseAnnualAccountantFee.DivRound(twelve, divScale)

	b := &types.DirectBreakdown{
		Currency:               types.CurrencyGBP,
		BaseProcessingFees:     baseProcessing,
		EuropeanFees:           european,
		NonDomesticFees:        nonDomestic,
		SubscriptionSurcharge:  subscriptionSurcharge,
		TaxServiceSurcharge:    taxService,
		ChargebackFees:         chargebacks,
		DisputeFees:            disputes,
		TaxComplianceCost:      compliance,
		AccountantFee:          accountant,
		AnnualComplianceCost:   compliance.Mul(twelve),
		OneOffRegistrationCost: table.Accountancy.OneOffRegistrationFee,
		MonthlyTurnover:        turnover,
		AnnualTurnover:         turnover.Mul(twelve),
	}

	// Totals are derived from the itemized components so the reconciliation
	// invariant holds exactly.
	b.TotalMonthlyCost = types.SumComponents(b.Components())
	b.TotalAnnualCost = b.TotalMonthlyCost.Mul(twelve)
	b.MonthlyProfit = b.MonthlyTurnover.Sub(b.TotalMonthlyCost)
	b.AnnualProfit = b.AnnualTurnover.Sub(b.TotalAnnualCost)
	return b, nil
}
