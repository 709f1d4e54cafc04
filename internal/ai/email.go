package ai

import (
	"context"
	"log"
)

type Email struct {
	To      string
	Subject string
	Body    string
}

// Emailer delivers outbound mail. The default transport is a log sink;
// a real SMTP or provider-backed implementation can be swapped in
// without touching callers.
type Emailer interface {
	Send(ctx context.Context, msg Email) error
}

type LogEmailer struct{}

func (LogEmailer) Send(_ context.Context, msg Email) error {
	log.Printf("email to=%s subject=%q body=%d bytes", msg.To, msg.Subject, len(msg.Body))
	return nil
}
