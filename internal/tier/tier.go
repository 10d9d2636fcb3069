// Package tier maps a completed-payment amount to a membership tier and a
// credit allotment. All tables are compiled in; they are versioned together
// with the agreement copy and change by deploy, not by config.
package tier

import "math"

const (
	Bronze = "Bronze"
	Silver = "Silver"
	Gold   = "Gold"
	Titan  = "Titan"

	// Unmatched is written when no threshold matches, so a human scanning
	// the ledger sees an explicit flag rather than a blank cell.
	Unmatched = "Unmatched"
)

// fallbackMultiplier covers price points with no exact credit-table entry.
const fallbackMultiplier = 1.3

// thresholds must stay sorted by descending minimum so the highest matching
// tier wins.
var thresholds = []struct {
	name     string
	minMinor int64
}{
	{Titan, 500_000},
	{Gold, 200_000},
	{Silver, 75_000},
	{Bronze, 25_000},
}

// creditsByDollar is keyed by the payment amount in whole dollars, rounded.
var creditsByDollar = map[int64]int64{
	250:  325,
	750:  1_050,
	2000: 3_000,
	5000: 8_000,
}

// Resolve returns the tier for a payment. An explicit tier carried in the
// session metadata is authoritative and bypasses amount-based inference: an
// operator can reclassify a payment without hand-computing credits.
//
// Zero and negative amounts are deliberately not guarded; they fall through
// every threshold and resolve to Unmatched.
func Resolve(metadataTier string, amountMinor int64) string {
	if metadataTier != "" {
		return metadataTier
	}
	for _, t := range thresholds {
		if amountMinor >= t.minMinor {
			return t.name
		}
	}
	return Unmatched
}

// Credits returns the credit allotment for a payment amount: an exact match
// on the rounded dollar amount, or round(dollars * 1.3) for price points the
// table does not know.
func Credits(amountMinor int64) int64 {
	dollars := float64(amountMinor) / 100
	if c, ok := creditsByDollar[int64(math.Round(dollars))]; ok {
		return c
	}
	return int64(math.Round(dollars * fallbackMultiplier))
}
