package port

import (
	"context"

	"github.com/google/uuid"

	"cityfashion/internal/domain"
)

// SaleRepository persists sale invoices with their items and payments.
type SaleRepository interface {
	// Create stores the sale, its items, and its payments in one transaction.
	Create(ctx context.Context, sale *domain.Sale, items []domain.SaleItem, payments []domain.SalePayment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
	GetItems(ctx context.Context, saleID uuid.UUID) ([]domain.SaleItem, error)
	GetPayments(ctx context.Context, saleID uuid.UUID) ([]domain.SalePayment, error)
	List(ctx context.Context, filters *domain.ReportFilters) ([]domain.Sale, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SaleStatus) error
	// NextInvoiceNumber reserves the next sequential invoice number.
	NextInvoiceNumber(ctx context.Context) (string, error)
}
