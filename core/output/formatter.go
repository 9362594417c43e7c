// Package output provides output formatting for strategy comparisons.
// This package produces human and machine-readable renderings; it performs
// no cost logic.
package output

import (
	"io"

	"github.com/shopspring/decimal"

	"payment-cost/core/types"
	"payment-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *ComparisonResult) error
}

// ComparisonResult is the complete single-point comparison output.
type ComparisonResult struct {
	// Profile is the evaluated transaction mix
	Profile types.TransactionProfile `json:"profile"`

	// Flags are the compliance flags used for the direct strategy
	Flags types.ComplianceFlags `json:"flags"`

	// Direct is the direct-processor breakdown, in GBP
	Direct *types.DirectBreakdown `json:"direct"`

	// MoR is the merchant-of-record breakdown, in USD
	MoR *types.MoRBreakdown `json:"mor"`

	// MoRMonthlyCostGBP is the MoR total converted with the FX assumption,
	// the only cross-currency figure in the result
	MoRMonthlyCostGBP decimal.Decimal `json:"mor_monthly_cost_gbp"`

	// MonthlySaving is direct cost minus converted MoR cost; positive means
	// the MoR strategy is cheaper this month
	MonthlySaving decimal.Decimal `json:"monthly_saving"`
}

// NewComparison assembles a comparison result, converting the MoR total into
// GBP for the headline figures.
func NewComparison(profile types.TransactionProfile, flags types.ComplianceFlags, direct *types.DirectBreakdown, mor *types.MoRBreakdown, fxRate decimal.Decimal) *ComparisonResult {
	morGBP := mor.TotalMonthlyCost.Mul(fxRate)
	return &ComparisonResult{
		Profile:           profile,
		Flags:             flags,
		Direct:            direct,
		MoR:               mor,
		MoRMonthlyCostGBP: morGBP,
		MonthlySaving:     direct.TotalMonthlyCost.Sub(morGBP),
	}
}

// NewFormatter returns the formatter for a format type.
func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{ShowDetails: true}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	}
	return nil, errors.NotSupported("output format " + string(format))
}
