package ses

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"cityfashion/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

// SendInvoice delivers the invoice PDF as a raw MIME message. SES simple
// content has no attachment support, so the message is assembled by hand.
func (s *sesSender) SendInvoice(ctx context.Context, email port.InvoiceEmail) error {
	raw, err := s.buildRawMessage(email)
	if err != nil {
		return fmt.Errorf("SES build message: %w", err)
	}

	_, err = s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func (s *sesSender) buildRawMessage(email port.InvoiceEmail) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", s.fromName, s.fromAddress)
	fmt.Fprintf(&buf, "To: %s <%s>\r\n", email.ToName, email.ToAddress)
	fmt.Fprintf(&buf, "Subject: Invoice %s from %s\r\n", email.InvoiceNumber, s.fromName)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", w.Boundary())

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=UTF-8")
	textPart, err := w.CreatePart(textHeader)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(textPart,
		"Dear %s,\r\n\r\nPlease find attached invoice %s.\r\nAmount: %s\r\n\r\nThank you for your business.\r\n%s\r\n",
		email.ToName, email.InvoiceNumber, email.TotalInWords, s.fromName)

	pdfHeader := textproto.MIMEHeader{}
	pdfHeader.Set("Content-Type", "application/pdf")
	pdfHeader.Set("Content-Transfer-Encoding", "base64")
	pdfHeader.Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", email.InvoiceNumber+".pdf"))
	pdfPart, err := w.CreatePart(pdfHeader)
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(email.PDF)
	// RFC 2045 line length limit.
	for len(encoded) > 76 {
		fmt.Fprintf(pdfPart, "%s\r\n", encoded[:76])
		encoded = encoded[76:]
	}
	fmt.Fprintf(pdfPart, "%s\r\n", encoded)

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
