// Package types - compliance flag configuration
package types

// ComplianceFlags holds the tax registrations the direct-processor strategy
// must pay compliance fees for. These are derived from the transaction mix by
// core/policy and recomputed on every profile change; they carry no manual
// state. The one manually controlled toggle (chargeback inclusion) lives in
// engine.Options, not here.
type ComplianceFlags struct {
	// EUVatRequired indicates EU VAT OSS registration (required from the
	// first EU sale)
	EUVatRequired bool `json:"eu_vat_required"`

	// UKVatRequired indicates UK VAT registration (revenue threshold)
	UKVatRequired bool `json:"uk_vat_required"`

	// USSalesTaxRequired indicates US sales tax compliance (nexus-based)
	USSalesTaxRequired bool `json:"us_sales_tax_required"`

	// NexusCount is the number of US states registered for sales tax.
	// Only consulted when USSalesTaxRequired is true; always >= 1.
	NexusCount int `json:"nexus_count"`
}

// Normalize clamps NexusCount to its floor of 1.
func (f ComplianceFlags) Normalize() ComplianceFlags {
	if f.NexusCount < 1 {
		f.NexusCount = 1
	}
	return f
}
