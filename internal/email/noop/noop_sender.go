package noop

import (
	"context"
	"log"

	"cityfashion/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoice(_ context.Context, email port.InvoiceEmail) error {
	log.Printf("[NOOP EMAIL] Invoice %s for %s (%s), %d byte PDF",
		email.InvoiceNumber, email.ToName, email.ToAddress, len(email.PDF))
	return nil
}
