// Package ledger appends founder records to the external Google Sheets
// ledger. The sheet is the system of record; this package never reads prior
// state, so it cannot detect duplicate rows for redelivered events.
package ledger

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/driftboard/founder-ledger/internal/domain"
	"github.com/driftboard/founder-ledger/internal/logging"
)

// NewSheetsService builds the Sheets API client from inline credentials JSON
// or a credentials file path, whichever is configured.
func NewSheetsService(ctx context.Context, credentialsJSON, credentialsFile string, opts ...option.ClientOption) (*sheets.Service, error) {
	switch {
	case credentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	case credentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewSheetsService: %w", err)
	}
	return svc, nil
}

// SheetsWriter appends one row per record to a named tab of a spreadsheet.
type SheetsWriter struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
	timeout       time.Duration
}

func NewSheetsWriter(svc *sheets.Service, spreadsheetID, tab string, timeout time.Duration) *SheetsWriter {
	return &SheetsWriter{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		tab:           tab,
		timeout:       timeout,
	}
}

// Append performs a single append call for the full row. There is no partial
// write and no internal retry: any failure, including hitting the deadline,
// surfaces as ErrLedgerUnavailable and the caller answers 5xx so the sender
// redelivers.
func (w *SheetsWriter) Append(ctx context.Context, rec *domain.FounderRecord) error {
	log := logging.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	vr := &sheets.ValueRange{
		Values: [][]any{rec.Row()},
	}

	start := time.Now()
	_, err := w.svc.Spreadsheets.Values.
		Append(w.spreadsheetID, w.tab, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("Append: %w: %v", domain.ErrLedgerUnavailable, err)
	}

	log.Info("ledger append completed",
		"session_id", rec.SessionID,
		"tab", w.tab,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
