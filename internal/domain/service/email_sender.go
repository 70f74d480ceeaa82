package service

import "context"

// EmailMessage is a single outgoing message.
type EmailMessage struct {
	To      string
	Bcc     string
	Subject string
	Text    string
	HTML    string
}

// EmailSender is the email provider. The sender address is configured on the implementation.
type EmailSender interface {
	Send(ctx context.Context, msg *EmailMessage) error
}
