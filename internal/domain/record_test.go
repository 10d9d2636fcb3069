package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFounderRecordRow(t *testing.T) {
	utc := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	rec := &FounderRecord{
		CreatedUTC:       utc,
		CreatedLocal:     utc.In(ny),
		Email:            "founder@example.com",
		Tier:             "Silver",
		AmountMinor:      75_000,
		Credits:          1_050,
		SessionID:        "cs_test_123",
		CustomerID:       "cus_456",
		AgreementVersion: AgreementVersion,
	}

	row := rec.Row()
	require.Len(t, row, 11)

	assert.Equal(t, "2026-03-14T15:09:26Z", row[0])
	assert.Equal(t, "2026-03-14 11:09:26", row[1])
	assert.Equal(t, "founder@example.com", row[2])
	assert.Equal(t, "Silver", row[3])
	assert.Equal(t, "750.00", row[4])
	assert.Equal(t, int64(1_050), row[5])
	assert.Equal(t, "cs_test_123", row[6])
	assert.Equal(t, "cus_456", row[7])

	// Notes and Status are always written empty, reserved for manual edits.
	assert.Equal(t, "", row[8])
	assert.Equal(t, "", row[9])
	assert.Equal(t, AgreementVersion, row[10])
}

func TestFounderRecordRowAmountFormatting(t *testing.T) {
	tests := []struct {
		amountMinor int64
		want        string
	}{
		{25_000, "250.00"},
		{99_999, "999.99"},
		{1, "0.01"},
		{0, "0.00"},
	}

	for _, tc := range tests {
		rec := &FounderRecord{AmountMinor: tc.amountMinor}
		assert.Equal(t, tc.want, rec.Row()[4])
	}
}
