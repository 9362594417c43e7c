// Package types - comparison curve points
package types

import "github.com/shopspring/decimal"

// CurvePoint is one sample of the cost comparison curve. MoR values are
// already converted into GBP so the two strategies are directly comparable.
// Points are transient: regenerated on every input change, never persisted.
type CurvePoint struct {
	// Turnover is the monthly turnover level sampled, in GBP
	Turnover decimal.Decimal `json:"turnover"`

	// DirectCost is the direct strategy's total monthly cost, in GBP
	DirectCost decimal.Decimal `json:"direct_cost"`

	// MoRCost is the MoR strategy's total monthly cost converted to GBP
	MoRCost decimal.Decimal `json:"mor_cost"`

	// DirectProfit is the direct strategy's monthly profit, in GBP
	DirectProfit decimal.Decimal `json:"direct_profit"`

	// MoRProfit is the MoR strategy's monthly profit converted to GBP
	MoRProfit decimal.Decimal `json:"mor_profit"`
}
