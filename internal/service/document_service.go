package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"cityfashion/internal/billing"
	"cityfashion/internal/document"
	"cityfashion/internal/domain"
	"cityfashion/internal/port"
)

// DocumentService renders printable documents for stored sales, optionally
// archiving and emailing them.
type DocumentService interface {
	// Render produces the PDF for a sale as the given document kind.
	Render(ctx context.Context, saleID uuid.UUID, kind domain.DocumentKind) ([]byte, string, error)
	// EmailInvoice renders the invoice and sends it to the sale's customer.
	EmailInvoice(ctx context.Context, saleID uuid.UUID) error
}

type documentService struct {
	saleRepo     port.SaleRepository
	customerRepo port.CustomerRepository
	modeRepo     port.PaymentModeRepository
	renderer     *document.Renderer
	archive      port.ObjectStorage // nil when archiving is disabled
	emailSender  port.EmailSender
}

// NewDocumentService creates a new DocumentService implementation. Passing a
// nil archive disables PDF archiving.
func NewDocumentService(
	saleRepo port.SaleRepository,
	customerRepo port.CustomerRepository,
	modeRepo port.PaymentModeRepository,
	renderer *document.Renderer,
	archive port.ObjectStorage,
	emailSender port.EmailSender,
) DocumentService {
	return &documentService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		modeRepo:     modeRepo,
		renderer:     renderer,
		archive:      archive,
		emailSender:  emailSender,
	}
}

func (s *documentService) Render(ctx context.Context, saleID uuid.UUID, kind domain.DocumentKind) ([]byte, string, error) {
	data, err := s.assemble(ctx, saleID, kind)
	if err != nil {
		return nil, "", err
	}

	pdf, err := s.renderer.Render(*data)
	if err != nil {
		return nil, "", fmt.Errorf("documentService.Render: %w", err)
	}

	if s.archive != nil {
		key := fmt.Sprintf("invoices/%s/%s.pdf", data.Sale.InvoiceDate.Format("2006/01"), data.Sale.InvoiceNumber)
		if err := s.archive.Put(ctx, key, "application/pdf", pdf); err != nil {
			// The operator still gets their printout when the archive is down.
			log.Printf("WARN: archive %s: %v", key, err)
		}
	}

	filename := fmt.Sprintf("%s_%s.pdf", kind, data.Sale.InvoiceNumber)
	return pdf, filename, nil
}

func (s *documentService) EmailInvoice(ctx context.Context, saleID uuid.UUID) error {
	data, err := s.assemble(ctx, saleID, domain.DocumentKindInvoice)
	if err != nil {
		return err
	}
	if data.Customer == nil || data.Customer.Email == "" {
		return domain.ErrCustomerWithoutEmail
	}

	pdf, err := s.renderer.Render(*data)
	if err != nil {
		return fmt.Errorf("documentService.EmailInvoice: %w", err)
	}

	return s.emailSender.SendInvoice(ctx, port.InvoiceEmail{
		ToAddress:     data.Customer.Email,
		ToName:        data.Customer.Name,
		InvoiceNumber: data.Sale.InvoiceNumber,
		TotalInWords:  data.InWords,
		PDF:           pdf,
	})
}

// assemble loads a sale with everything its printed form shows.
func (s *documentService) assemble(ctx context.Context, saleID uuid.UUID, kind domain.DocumentKind) (*document.InvoiceData, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale.Status == domain.SaleStatusCancelled {
		return nil, domain.ErrSaleNotPrintable
	}

	items, err := s.saleRepo.GetItems(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("documentService items: %w", err)
	}
	payments, err := s.saleRepo.GetPayments(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("documentService payments: %w", err)
	}

	var customer *domain.Customer
	if sale.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(ctx, *sale.CustomerID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("documentService customer: %w", err)
		}
	}

	modeNames := make(map[string]string, len(payments))
	for _, p := range payments {
		if _, ok := modeNames[p.ModeID.String()]; ok {
			continue
		}
		mode, err := s.modeRepo.GetByID(ctx, p.ModeID)
		if err != nil {
			continue
		}
		modeNames[p.ModeID.String()] = mode.Name
	}

	// The tax table is regrouped from the stored raw line inputs so a
	// reprint always matches the figures computed at sale time.
	lineItems := make([]billing.LineItem, len(items))
	for i, it := range items {
		lineItems[i] = billing.LineItem{
			Description:     it.Description,
			HSNCode:         it.HSNCode,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			TaxPercent:      it.TaxPercent,
			InterState:      it.InterState,
		}
	}

	return &document.InvoiceData{
		Kind:       kind,
		Sale:       sale,
		Items:      items,
		Payments:   payments,
		ModeNames:  modeNames,
		Customer:   customer,
		TaxSummary: billing.GroupByTax(lineItems),
		InWords:    billing.AmountInWords(sale.RoundedTotal),
	}, nil
}
