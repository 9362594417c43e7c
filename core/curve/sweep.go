// Package curve samples the cost model across a turnover range to drive the
// strategy comparison chart, and locates the break-even turnover.
package curve

import (
	"github.com/shopspring/decimal"

	"payment-cost/core/engine"
	"payment-cost/core/policy"
	"payment-cost/core/rates"
	"payment-cost/core/types"
	"payment-cost/internal/errors"
)

// DefaultSteps is the number of sweep intervals when none is given.
const DefaultSteps = 50

// Params configures a sweep. The profile fields mirror the single-point
// inputs; the sweep varies turnover and derives the implied volume at each
// sample from UnitAmount.
type Params struct {
	// Flags are the compliance flags applied at every sample when
	// DeriveFlags is false
	Flags types.ComplianceFlags `json:"flags"`

	// DeriveFlags recomputes the compliance flags from each sample's
	// implied profile instead of using Flags. This is what makes the swept
	// cost non-monotonic: compliance fees switch on as samples cross the
	// registration thresholds.
	DeriveFlags bool `json:"derive_flags"`

	// Options are the manual evaluation toggles
	Options engine.Options `json:"options"`

	// EuropeanSharePct and USSharePct fix the regional mix
	EuropeanSharePct int `json:"european_share_pct"`
	USSharePct       int `json:"us_share_pct"`

	// SubscriptionSharePct and SubscriptionUnitAmount fix the subscription mix
	SubscriptionSharePct   int             `json:"subscription_share_pct"`
	SubscriptionUnitAmount decimal.Decimal `json:"subscription_unit_amount"`

	// MaxTurnover is the top of the swept range, in GBP per month
	MaxTurnover decimal.Decimal `json:"max_turnover"`

	// UnitAmount is the average transaction amount used to imply volume
	UnitAmount decimal.Decimal `json:"unit_amount"`

	// Steps is the number of equal-width intervals; DefaultSteps when zero
	Steps int `json:"steps"`
}

// Sweep evaluates both strategies at each turnover sample. The range
// [0, MaxTurnover] is cut into Steps equal intervals; the zero-turnover
// sample is skipped to avoid a degenerate zero-volume evaluation, so the
// result has exactly Steps points, strictly increasing in turnover. MoR cost
// and profit are converted into GBP with the configured FX rate so every
// point compares like with like.
func Sweep(params Params, table *rates.Table) ([]types.CurvePoint, error) {
	if table == nil {
		table = rates.Default()
	}
	steps := params.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}
	if params.UnitAmount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.Inputf("unit amount must be > 0 to imply volume, got %s", params.UnitAmount)
	}
	if params.MaxTurnover.LessThanOrEqual(decimal.Zero) {
		return nil, errors.Inputf("max turnover must be > 0, got %s", params.MaxTurnover)
	}

	fx := table.Assumptions.USDToGBPRate
	stepWidth := params.MaxTurnover.Div(decimal.NewFromInt(int64(steps)))

	points := make([]types.CurvePoint, 0, steps)
	for i := 1; i <= steps; i++ {
		turnover := stepWidth.Mul(decimal.NewFromInt(int64(i)))

		volume := turnover.DivRound(params.UnitAmount, 16).Round(0).IntPart()

		profile := types.TransactionProfile{
			UnitAmount:             params.UnitAmount,
			MonthlyVolume:          volume,
			EuropeanSharePct:       params.EuropeanSharePct,
			USSharePct:             params.USSharePct,
			SubscriptionSharePct:   params.SubscriptionSharePct,
			SubscriptionUnitAmount: params.SubscriptionUnitAmount,
		}

		flags := params.Flags
		if params.DeriveFlags {
			flags = policy.DeriveFlags(profile)
		}

		direct, err := engine.EvaluateDirect(profile, flags, params.Options, table)
		if err != nil {
			return nil, err
		}
		mor, err := engine.EvaluateMoR(profile, table)
		if err != nil {
			return nil, err
		}

		points = append(points, types.CurvePoint{
			Turnover:     turnover,
			DirectCost:   direct.TotalMonthlyCost,
			MoRCost:      mor.TotalMonthlyCost.Mul(fx),
			DirectProfit: direct.MonthlyProfit,
			MoRProfit:    mor.MonthlyProfit.Mul(fx),
		})
	}
	return points, nil
}

// BreakEven scans consecutive points for the first sign change of
// direct cost minus MoR cost and returns that pair's later turnover. Costs
// are not monotonic in this model (compliance fees switch on at thresholds),
// so later crossings may exist; only the first is reported. The second
// return is false when the curve never crosses.
func BreakEven(points []types.CurvePoint) (decimal.Decimal, bool) {
	if len(points) < 2 {
		return decimal.Zero, false
	}
	prev := points[0].DirectCost.Sub(points[0].MoRCost)
	for _, p := range points[1:] {
		diff := p.DirectCost.Sub(p.MoRCost)
		if diff.Sign() != prev.Sign() {
			return p.Turnover, true
		}
		prev = diff
	}
	return decimal.Zero, false
}
