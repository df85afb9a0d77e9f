package constants

import "time"

// Redis key prefixes and TTLs
const (
	// KeyCashbookDay caches the cashbook of a fully elapsed day, which is
	// immutable. Format: cashbook:2006-01-02
	KeyCashbookDay = "cashbook:"

	// CashbookCacheTTL bounds how long a closed-day cashbook stays cached.
	CashbookCacheTTL = 24 * time.Hour
)
