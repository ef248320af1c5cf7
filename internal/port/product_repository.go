package port

import (
	"context"

	"github.com/google/uuid"

	"cityfashion/internal/domain"
)

// ProductRepository persists the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, p *domain.Product) error
	AdjustStock(ctx context.Context, id uuid.UUID, delta float64) error
	Delete(ctx context.Context, id uuid.UUID) error
}
