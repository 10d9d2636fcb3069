package domain

import "errors"

var (
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrSignatureInvalid     = errors.New("signature invalid")
	ErrMalformedEvent       = errors.New("malformed event")
	ErrLedgerUnavailable    = errors.New("ledger unavailable")
)
