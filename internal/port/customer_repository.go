package port

import (
	"context"

	"github.com/google/uuid"

	"cityfashion/internal/domain"
)

// CustomerRepository persists customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}
