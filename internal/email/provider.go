package email

// Email is a single outbound message.
type Email struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Provider sends email synchronously. A failed send returns an error that
// callers surface to the user; it never crashes the request.
type Provider interface {
	Send(email *Email) error
}
