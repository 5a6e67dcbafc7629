package email

import "jobmarket_backend/internal/logger"

// NoopProvider logs instead of sending. Used when email is disabled and
// in tests.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(to, subject, body string) error {
	logger.Debug("email sending disabled, dropping message", "to", to, "subject", subject)
	return nil
}
