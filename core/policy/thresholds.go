// Package policy derives tax-registration obligations from a transaction
// profile. The derivation is pure and idempotent; callers re-run it on every
// profile change and the result unconditionally replaces any previous flags.
package policy

import (
	"github.com/shopspring/decimal"

	"payment-cost/core/types"
)

const (
	// EUShareThresholdPct is the EU share of the mix at which EU VAT OSS
	// registration is needed. Registration follows from the first EU sale,
	// so the threshold is a 1% mix share, not a revenue level.
	EUShareThresholdPct = 1

	// UKVatRevenueThreshold is the UK sales value in GBP at which UK VAT
	// registration is needed.
	UKVatRevenueThreshold = 85000

	// USSalesCountThreshold is the US transaction count above which US
	// sales tax compliance is needed. Each further multiple of the
	// threshold adds one nexus state.
	USSalesCountThreshold = 200
)

var (
	hundred        = decimal.NewFromInt(100)
	ukVatThreshold = decimal.NewFromInt(UKVatRevenueThreshold)
	usCountDivisor = decimal.NewFromInt(USSalesCountThreshold)
)

// DeriveFlags computes the compliance flags for a profile.
func DeriveFlags(profile types.TransactionProfile) types.ComplianceFlags {
	turnover := profile.MonthlyTurnover()

	ukShare := decimal.NewFromInt(int64(profile.DomesticSharePct()))
	ukSales := turnover.Mul(ukShare).Div(hundred)

	usSalesCount := profile.ShareVolume(profile.USSharePct)

	nexusCount := int(usSalesCount.Div(usCountDivisor).Floor().IntPart())
	if nexusCount < 1 {
		nexusCount = 1
	}

	return types.ComplianceFlags{
		EUVatRequired:      profile.EuropeanSharePct >= EUShareThresholdPct,
		UKVatRequired:      ukSales.GreaterThanOrEqual(ukVatThreshold),
		USSalesTaxRequired: usSalesCount.GreaterThan(usCountDivisor),
		NexusCount:         nexusCount,
	}
}
