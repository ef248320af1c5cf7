package port

import "context"

// InvoiceEmail is an invoice document addressed to a customer.
type InvoiceEmail struct {
	ToAddress     string
	ToName        string
	InvoiceNumber string
	TotalInWords  string
	PDF           []byte
}

// EmailSender delivers invoice documents to customers.
type EmailSender interface {
	SendInvoice(ctx context.Context, email InvoiceEmail) error
}
