package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		metadataTier string
		amountMinor  int64
		want         string
	}{
		{"bronze threshold", "", 25_000, Bronze},
		{"silver threshold", "", 75_000, Silver},
		{"between thresholds resolves downward", "", 100_000, Silver},
		{"gold threshold", "", 200_000, Gold},
		{"titan threshold", "", 500_000, Titan},
		{"above titan stays titan", "", 1_000_000, Titan},
		{"below lowest threshold", "", 10_000, Unmatched},
		{"zero amount", "", 0, Unmatched},
		{"negative amount", "", -5_000, Unmatched},
		{"metadata overrides amount", "Gold", 1_000, "Gold"},
		{"metadata overrides even above thresholds", "Bronze", 500_000, "Bronze"},
		{"unknown metadata value still wins", "Legacy", 75_000, "Legacy"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.metadataTier, tc.amountMinor))
		})
	}
}

func TestCredits(t *testing.T) {
	tests := []struct {
		name        string
		amountMinor int64
		want        int64
	}{
		{"bronze exact", 25_000, 325},
		{"silver exact", 75_000, 1_050},
		{"gold exact", 200_000, 3_000},
		{"titan exact", 500_000, 8_000},
		{"no exact match falls back to multiplier", 100_000, 1_300},
		{"small amount fallback", 1_000, 13},
		{"cents round into an exact match", 25_049, 325},
		{"zero amount", 0, 0},
		{"negative amount produces negative credits", -10_000, -130},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Credits(tc.amountMinor))
		})
	}
}
