// Package types - shared value objects for the cost model
package types

// Currency represents a currency code
type Currency string

const (
	// CurrencyGBP is the direct-processor strategy's native currency
	CurrencyGBP Currency = "GBP"

	// CurrencyUSD is the merchant-of-record strategy's native currency
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display symbol for the currency
func (c Currency) Symbol() string {
	switch c {
	case CurrencyGBP:
		return "£"
	case CurrencyUSD:
		return "$"
	}
	return string(c) + " "
}
