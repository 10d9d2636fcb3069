package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftboard/founder-ledger/internal/domain"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
	t.Setenv("SHEET_ID", "sheet-1")
	t.Setenv("GOOGLE_CREDENTIALS_JSON", `{"type":"service_account"}`)
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "Founders", cfg.SheetTab)
	assert.Equal(t, "America/New_York", cfg.LedgerTimezone)
	assert.Equal(t, 300, cfg.WebhookToleranceS)
	assert.Equal(t, 10, cfg.LedgerAppendTimeoutS)
}

func TestLoadMissingWebhookSecret(t *testing.T) {
	setRequired(t)
	// t.Setenv registers the restore; required means "set", so unset it.
	os.Unsetenv("STRIPE_WEBHOOK_SECRET")

	_, err := Load()
	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestLoadCredentialSourceValidation(t *testing.T) {
	t.Run("neither source set", func(t *testing.T) {
		setRequired(t)
		t.Setenv("GOOGLE_CREDENTIALS_JSON", "")

		_, err := Load()
		assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
	})

	t.Run("both sources set", func(t *testing.T) {
		setRequired(t)
		t.Setenv("GOOGLE_CREDENTIALS_FILE", "/etc/creds.json")

		_, err := Load()
		assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
	})

	t.Run("file source alone is fine", func(t *testing.T) {
		setRequired(t)
		t.Setenv("GOOGLE_CREDENTIALS_JSON", "")
		t.Setenv("GOOGLE_CREDENTIALS_FILE", "/etc/creds.json")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "/etc/creds.json", cfg.GoogleCredentialsFile)
	})
}
