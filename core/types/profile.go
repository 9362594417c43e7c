// Package types - transaction mix input
package types

import (
	"github.com/shopspring/decimal"

	"payment-cost/internal/errors"
)

// TransactionProfile describes a merchant's monthly transaction mix.
// Share percentages are stored as whole numbers 0-100 and converted to
// fractions only inside computation.
type TransactionProfile struct {
	// UnitAmount is the blended average amount per transaction, in GBP
	UnitAmount decimal.Decimal `json:"unit_amount"`

	// MonthlyVolume is the number of transactions per month
	MonthlyVolume int64 `json:"monthly_volume"`

	// EuropeanSharePct is the percentage of EU transactions (excluding UK)
	EuropeanSharePct int `json:"european_share_pct"`

	// USSharePct is the percentage of US transactions
	USSharePct int `json:"us_share_pct"`

	// SubscriptionSharePct is the percentage of transactions that are subscriptions
	SubscriptionSharePct int `json:"subscription_share_pct"`

	// SubscriptionUnitAmount is the average subscription amount, in GBP
	SubscriptionUnitAmount decimal.Decimal `json:"subscription_unit_amount"`
}

var (
	hundred      = decimal.NewFromInt(100)
	decimalScale = int32(16)
)

// DomesticSharePct returns the UK share of the mix. The remainder after the
// EU and US shares is treated as domestic; rest-of-world is folded into the
// non-domestic fee bucket at evaluation time.
func (p TransactionProfile) DomesticSharePct() int {
	return 100 - p.EuropeanSharePct - p.USSharePct
}

// Volume returns the monthly volume as a decimal.
func (p TransactionProfile) Volume() decimal.Decimal {
	return decimal.NewFromInt(p.MonthlyVolume)
}

// MonthlyTurnover returns unit amount times monthly volume.
func (p TransactionProfile) MonthlyTurnover() decimal.Decimal {
	return p.UnitAmount.Mul(p.Volume())
}

// ShareVolume returns the fractional transaction count for a whole-number
// percentage of the mix. Fractional counts are intentional: the model works
// on expected values, not integral transactions.
func (p TransactionProfile) ShareVolume(sharePct int) decimal.Decimal {
	return p.Volume().Mul(decimal.NewFromInt(int64(sharePct))).DivRound(hundred, decimalScale)
}

// Validate rejects profiles the engine cannot price coherently. A share sum
// above 100 would produce a negative domestic bucket and negative fees, so it
// is refused here instead of silently flowing through the arithmetic.
func (p TransactionProfile) Validate() error {
	if p.MonthlyVolume < 0 {
		return errors.Inputf("monthly volume must be >= 0, got %d", p.MonthlyVolume)
	}
	if p.UnitAmount.IsNegative() {
		return errors.Inputf("unit amount must be >= 0, got %s", p.UnitAmount)
	}
	if p.SubscriptionUnitAmount.IsNegative() {
		return errors.Inputf("subscription unit amount must be >= 0, got %s", p.SubscriptionUnitAmount)
	}
	for _, share := range []struct {
		name string
		pct  int
	}{
		{"european", p.EuropeanSharePct},
		{"us", p.USSharePct},
		{"subscription", p.SubscriptionSharePct},
	} {
		if share.pct < 0 || share.pct > 100 {
			return errors.Inputf("%s share must be within [0,100], got %d", share.name, share.pct)
		}
	}
	if sum := p.EuropeanSharePct + p.USSharePct; sum > 100 {
		return errors.Inputf("european + us shares must not exceed 100, got %d", sum)
	}
	return nil
}
