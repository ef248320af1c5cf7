package port

import (
	"context"

	"github.com/google/uuid"

	"cityfashion/internal/domain"
)

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Supplier, int, error)
	Update(ctx context.Context, s *domain.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}
