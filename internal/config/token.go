package config

import (
	"fmt"
	"time"
)

// TokenConfig holds signing configuration for action and access tokens.
type TokenConfig struct {
	// Secret is the HMAC signing key shared by issuer and verifier.
	Secret string
	// ActionTTL bounds how long a confirmation link stays redeemable.
	// Long enough for an email round trip, short enough to limit replay.
	ActionTTL time.Duration
	// ConfirmBaseURL is the public base URL embedded in confirmation links.
	ConfirmBaseURL string
}

// LoadTokenConfigFromEnv loads token configuration from environment variables.
func LoadTokenConfigFromEnv() TokenConfig {
	return TokenConfig{
		Secret:         GetEnv("TOKEN_SECRET", ""),
		ActionTTL:      GetEnvDuration("TOKEN_ACTION_TTL", 24*time.Hour),
		ConfirmBaseURL: GetEnv("CONFIRM_BASE_URL", "http://localhost:8080"),
	}
}

// Validate validates token configuration.
func (c TokenConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("TOKEN_SECRET is required")
	}
	if c.ActionTTL <= 0 {
		return fmt.Errorf("TOKEN_ACTION_TTL must be greater than 0")
	}
	return nil
}
