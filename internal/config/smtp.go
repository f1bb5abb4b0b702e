package config

// SMTPConfig holds mail delivery configuration for confirmation emails.
// An empty Host disables real delivery (the no-op notifier is used instead).
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LoadSMTPConfigFromEnv loads SMTP configuration from environment variables.
func LoadSMTPConfigFromEnv() SMTPConfig {
	return SMTPConfig{
		Host:     GetEnv("SMTP_HOST", ""),
		Port:     GetEnvInt("SMTP_PORT", 587),
		Username: GetEnv("SMTP_USERNAME", ""),
		Password: GetEnv("SMTP_PASSWORD", ""),
		From:     GetEnv("SMTP_FROM", "noreply@matchday.local"),
	}
}

// Enabled reports whether real mail delivery is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}
