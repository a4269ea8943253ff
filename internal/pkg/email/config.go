package email

import "fmt"

// DefaultConfig returns a development-friendly configuration.
func DefaultConfig() Config {
	return Config{
		SMTPHost:     "localhost",
		SMTPPort:     587,
		FromEmail:    "noreply@jobportal.local",
		FromName:     "Job Portal",
		UseTLS:       true,
		TemplatePath: "./templates/email",
		FrontendURL:  "http://localhost:3000",
	}
}

// Validate checks the configuration before a sender is built.
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTPPort)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}
