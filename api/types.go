// Package api - request and response types
package api

import (
	"github.com/shopspring/decimal"

	"payment-cost/core/engine"
	"payment-cost/core/rates"
	"payment-cost/core/types"
)

// EstimateRequest is the input for POST /estimate.
type EstimateRequest struct {
	// Profile is the transaction mix to evaluate
	Profile types.TransactionProfile `json:"profile"`

	// Flags optionally pins the compliance flags. When omitted they are
	// derived from the profile by the threshold policy.
	Flags *types.ComplianceFlags `json:"flags,omitempty"`

	// Options carries the manual toggles
	Options engine.Options `json:"options"`

	// Rates optionally overrides the server's rate table for this request
	Rates *rates.Overrides `json:"rates,omitempty"`
}

// CurveRequest is the input for POST /curve.
type CurveRequest struct {
	// EuropeanSharePct and USSharePct fix the regional mix
	EuropeanSharePct int `json:"european_share_pct"`
	USSharePct       int `json:"us_share_pct"`

	// SubscriptionSharePct and SubscriptionUnitAmount fix the subscription mix
	SubscriptionSharePct   int             `json:"subscription_share_pct"`
	SubscriptionUnitAmount decimal.Decimal `json:"subscription_unit_amount"`

	// MaxTurnover is the top of the swept range in GBP
	MaxTurnover decimal.Decimal `json:"max_turnover"`

	// UnitAmount is the average transaction amount used to imply volume
	UnitAmount decimal.Decimal `json:"unit_amount"`

	// Steps is the number of sweep intervals (default 50)
	Steps int `json:"steps,omitempty"`

	// Flags optionally pins the compliance flags for every sample. When
	// omitted they are derived from each sample's implied profile.
	Flags *types.ComplianceFlags `json:"flags,omitempty"`

	// Options carries the manual toggles
	Options engine.Options `json:"options"`

	// Rates optionally overrides the server's rate table for this request
	Rates *rates.Overrides `json:"rates,omitempty"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	// InputHash is a deterministic hash of the request
	InputHash string `json:"input_hash"`

	// EngineVersion is the server version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the evaluation wall time
	DurationMs int64 `json:"duration_ms"`
}

// CurveResponse is the output of POST /curve.
type CurveResponse struct {
	// Points is the swept comparison series, strictly increasing turnover
	Points []types.CurvePoint `json:"points"`

	// BreakEven is the first crossing's turnover, absent when the curves
	// never cross inside the swept range
	BreakEven *decimal.Decimal `json:"break_even,omitempty"`

	// Metadata describes the evaluation
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}
