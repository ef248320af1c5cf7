package port

import (
	"context"

	"github.com/google/uuid"

	"cityfashion/internal/domain"
)

// PaymentModeRepository persists configured tender types.
type PaymentModeRepository interface {
	Create(ctx context.Context, m *domain.PaymentMode) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error)
	ListActive(ctx context.Context) ([]domain.PaymentMode, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
