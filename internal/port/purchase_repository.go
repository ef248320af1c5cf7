package port

import (
	"context"

	"github.com/google/uuid"

	"cityfashion/internal/domain"
)

// PurchaseRepository persists purchase invoices with their items.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase, items []domain.PurchaseItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error)
	GetItems(ctx context.Context, purchaseID uuid.UUID) ([]domain.PurchaseItem, error)
	List(ctx context.Context, filters *domain.ReportFilters) ([]domain.Purchase, int, error)
}
