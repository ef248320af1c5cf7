package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cityfashion/internal/config"
	"cityfashion/internal/document"
	"cityfashion/internal/domain"
	"cityfashion/mocks"
)

func storedSaleForTest() (*domain.Sale, []domain.SaleItem, []domain.SalePayment) {
	saleID := uuid.New()
	sale := &domain.Sale{
		ID:            saleID,
		InvoiceNumber: "INV-000007",
		InvoiceDate:   time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
		Subtotal:      200,
		Tax:           36,
		GrandTotal:    236,
		RoundedTotal:  236,
		TotalPaid:     236,
		Status:        domain.SaleStatusCompleted,
	}
	items := []domain.SaleItem{
		{
			SaleID:      saleID,
			Description: "Cotton Shirt",
			HSNCode:     "6205",
			Quantity:    2,
			UnitPrice:   100,
			TaxPercent:  18,
			TaxAmount:   36,
			Total:       236,
		},
	}
	return sale, items, nil
}

func TestDocumentServiceRender(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	modeRepo := new(mocks.MockPaymentModeRepo)
	renderer := document.NewRenderer(config.StoreConfig{Name: "City Fashion", StateCode: "29"})

	sale, items, payments := storedSaleForTest()
	saleRepo.On("GetByID", mock.Anything, sale.ID).Return(sale, nil)
	saleRepo.On("GetItems", mock.Anything, sale.ID).Return(items, nil)
	saleRepo.On("GetPayments", mock.Anything, sale.ID).Return(payments, nil)

	svc := NewDocumentService(saleRepo, customerRepo, modeRepo, renderer, nil, nil)

	pdf, filename, err := svc.Render(context.Background(), sale.ID, domain.DocumentKindInvoice)
	require.NoError(t, err)
	assert.Equal(t, "invoice_INV-000007.pdf", filename)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestDocumentServiceRenderArchives(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	modeRepo := new(mocks.MockPaymentModeRepo)
	archive := new(mocks.MockObjectStorage)
	renderer := document.NewRenderer(config.StoreConfig{Name: "City Fashion"})

	sale, items, payments := storedSaleForTest()
	saleRepo.On("GetByID", mock.Anything, sale.ID).Return(sale, nil)
	saleRepo.On("GetItems", mock.Anything, sale.ID).Return(items, nil)
	saleRepo.On("GetPayments", mock.Anything, sale.ID).Return(payments, nil)
	archive.On("Put", mock.Anything, "invoices/2025/04/INV-000007.pdf", "application/pdf", mock.Anything).Return(nil)

	svc := NewDocumentService(saleRepo, customerRepo, modeRepo, renderer, archive, nil)

	_, _, err := svc.Render(context.Background(), sale.ID, domain.DocumentKindInvoice)
	require.NoError(t, err)
	archive.AssertExpectations(t)
}

func TestDocumentServiceRenderCancelled(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	renderer := document.NewRenderer(config.StoreConfig{Name: "City Fashion"})

	sale, _, _ := storedSaleForTest()
	sale.Status = domain.SaleStatusCancelled
	saleRepo.On("GetByID", mock.Anything, sale.ID).Return(sale, nil)

	svc := NewDocumentService(saleRepo, new(mocks.MockCustomerRepo), new(mocks.MockPaymentModeRepo), renderer, nil, nil)

	_, _, err := svc.Render(context.Background(), sale.ID, domain.DocumentKindInvoice)
	assert.ErrorIs(t, err, domain.ErrSaleNotPrintable)
}

func TestDocumentServiceEmailInvoice(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	modeRepo := new(mocks.MockPaymentModeRepo)
	sender := new(mocks.MockEmailSender)
	renderer := document.NewRenderer(config.StoreConfig{Name: "City Fashion"})

	sale, items, payments := storedSaleForTest()
	customerID := uuid.New()
	sale.CustomerID = &customerID

	saleRepo.On("GetByID", mock.Anything, sale.ID).Return(sale, nil)
	saleRepo.On("GetItems", mock.Anything, sale.ID).Return(items, nil)
	saleRepo.On("GetPayments", mock.Anything, sale.ID).Return(payments, nil)
	customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, Name: "Asha", Email: "asha@example.com"}, nil)
	sender.On("SendInvoice", mock.Anything, mock.Anything).Return(nil)

	svc := NewDocumentService(saleRepo, customerRepo, modeRepo, renderer, nil, sender)

	require.NoError(t, svc.EmailInvoice(context.Background(), sale.ID))
	sender.AssertExpectations(t)
}

func TestDocumentServiceEmailWithoutCustomerEmail(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	renderer := document.NewRenderer(config.StoreConfig{Name: "City Fashion"})

	sale, items, payments := storedSaleForTest()
	saleRepo.On("GetByID", mock.Anything, sale.ID).Return(sale, nil)
	saleRepo.On("GetItems", mock.Anything, sale.ID).Return(items, nil)
	saleRepo.On("GetPayments", mock.Anything, sale.ID).Return(payments, nil)

	svc := NewDocumentService(saleRepo, new(mocks.MockCustomerRepo), new(mocks.MockPaymentModeRepo), renderer, nil, new(mocks.MockEmailSender))

	err := svc.EmailInvoice(context.Background(), sale.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerWithoutEmail)
}
