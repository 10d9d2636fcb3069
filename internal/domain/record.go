package domain

import (
	"fmt"
	"time"
)

// AgreementVersion tags every ledger row with the founder-agreement revision
// that was current when the payment landed.
const AgreementVersion = "founders-v1"

// FounderRecord is one row of the founder ledger. It is built once per
// qualifying event, appended, and discarded; the external sheet is the
// system of record.
type FounderRecord struct {
	CreatedUTC   time.Time
	CreatedLocal time.Time
	Email        string
	Tier         string
	AmountMinor  int64
	Credits      int64
	SessionID    string
	CustomerID   string

	// Notes and Status are written empty; both columns are reserved for
	// out-of-band human edits in the sheet itself.
	Notes  string
	Status string

	AgreementVersion string
}

const localTimeLayout = "2006-01-02 15:04:05"

// Row serializes the record into the fixed 11-column ledger layout:
// Timestamp-UTC, Timestamp-Local, Email, Tier, AmountPaidUSD, Credits,
// SessionID, CustomerID, Notes, Status, AgreementVersion.
func (r *FounderRecord) Row() []any {
	return []any{
		r.CreatedUTC.Format(time.RFC3339),
		r.CreatedLocal.Format(localTimeLayout),
		r.Email,
		r.Tier,
		fmt.Sprintf("%.2f", float64(r.AmountMinor)/100),
		r.Credits,
		r.SessionID,
		r.CustomerID,
		r.Notes,
		r.Status,
		r.AgreementVersion,
	}
}
