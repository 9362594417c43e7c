// Package engine - merchant-of-record strategy
package engine

import (
	"payment-cost/core/rates"
	"payment-cost/core/types"
)

// EvaluateMoR prices the merchant-of-record strategy for a profile.
// All output amounts are in USD; conversion into GBP for comparison is the
// caller's job (see core/curve).
//
// The volume splits into two buckets only: the US share, which the platform
// treats as domestic and absorbs into the platform fee, and everything else,
// which pays the international rate. Tax compliance, chargebacks and
// disputes carry no separate line items because the platform fee bundles
// them; that bundling is the strategy's core trade-off.
func EvaluateMoR(profile types.TransactionProfile, table *rates.Table) (*types.MoRBreakdown, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		table = rates.Default()
	}

	volume := profile.Volume()
	turnover := profile.MonthlyTurnover()

	usTxns := profile.ShareVolume(profile.USSharePct)
	internationalTxns := volume.Sub(usTxns)
	internationalRevenue := internationalTxns.Mul(profile.UnitAmount)

	platform := turnover.Mul(table.MoR.PlatformRate).Add(volume.Mul(table.MoR.PlatformFixedFee))
	international := internationalRevenue.Mul(table.MoR.InternationalRate)

	subscriptionRevenue := profile.ShareVolume(profile.SubscriptionSharePct).Mul(profile.SubscriptionUnitAmount)
	subscriptionSurcharge := subscriptionRevenue.Mul(table.MoR.SubscriptionSurchargeRate)

	// Payout fee is revenue-based, not per-transaction.
	payout := turnover.Mul(table.MoR.PayoutRate)

	accountant := table.Accountancy.BaseAnnualAccountantFee.DivRound(twelve, divScale)

	b := &types.MoRBreakdown{
		Currency:              types.CurrencyUSD,
		PlatformFee:           platform,
		InternationalFees:     international,
		SubscriptionSurcharge: subscriptionSurcharge,
		PayoutFee:             payout,
		AccountantFee:         accountant,
		MonthlyTurnover:       turnover,
		AnnualTurnover:        turnover.Mul(twelve),
	}

	b.TotalMonthlyCost = types.SumComponents(b.Components())
	b.TotalAnnualCost = b.TotalMonthlyCost.Mul(twelve)
	b.MonthlyProfit = b.MonthlyTurnover.Sub(b.TotalMonthlyCost)
	b.AnnualProfit = b.AnnualTurnover.Sub(b.TotalAnnualCost)
	return b, nil
}
