package email

// Provider sends transactional mail. Services depend on this interface
// so tests can swap in the noop implementation.
type Provider interface {
	Send(to, subject, body string) error
}
