package money

// Code represents a currency code (e.g., "BRL", "USD").
type Code string

// Common currency codes
const (
	BRL Code = "BRL" // Brazilian Real
	USD Code = "USD" // US Dollar
)
