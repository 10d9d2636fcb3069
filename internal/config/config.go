package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"

	"github.com/driftboard/founder-ledger/internal/domain"
)

// Config is built once at startup and passed by reference; it is never
// mutated after Load returns.
type Config struct {
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY,required"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET,required"`

	SheetID  string `env:"SHEET_ID,required"`
	SheetTab string `env:"SHEET_TAB" envDefault:"Founders"`

	// Exactly one of the two credential sources must be set.
	GoogleCredentialsJSON string `env:"GOOGLE_CREDENTIALS_JSON"`
	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE"`

	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	LedgerTimezone string `env:"LEDGER_TIMEZONE" envDefault:"America/New_York"`

	WebhookToleranceS    int `env:"WEBHOOK_TOLERANCE_S" envDefault:"300"`
	StripeTimeoutS       int `env:"STRIPE_TIMEOUT_S" envDefault:"10"`
	LedgerAppendTimeoutS int `env:"LEDGER_APPEND_TIMEOUT_S" envDefault:"10"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w: %v", domain.ErrConfigurationMissing, err)
	}

	if (cfg.GoogleCredentialsJSON == "") == (cfg.GoogleCredentialsFile == "") {
		return nil, fmt.Errorf("config.Load: exactly one of GOOGLE_CREDENTIALS_JSON or GOOGLE_CREDENTIALS_FILE must be set: %w", domain.ErrConfigurationMissing)
	}

	return &cfg, nil
}
