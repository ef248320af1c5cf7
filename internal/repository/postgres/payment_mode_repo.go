package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cityfashion/internal/domain"
	"cityfashion/internal/port"
)

type paymentModeRepo struct {
	db *sqlx.DB
}

// NewPaymentModeRepo creates a new PostgreSQL-backed PaymentModeRepository.
func NewPaymentModeRepo(db *sqlx.DB) port.PaymentModeRepository {
	return &paymentModeRepo{db: db}
}

func (r *paymentModeRepo) Create(ctx context.Context, m *domain.PaymentMode) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO payment_modes (id, name, is_active, created_at) VALUES ($1, $2, $3, $4)",
		m.ID, m.Name, m.IsActive, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("paymentModeRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentModeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error) {
	var m domain.PaymentMode
	err := r.db.GetContext(ctx, &m, "SELECT * FROM payment_modes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("paymentModeRepo.GetByID: %w", err)
	}
	return &m, nil
}

func (r *paymentModeRepo) ListActive(ctx context.Context) ([]domain.PaymentMode, error) {
	var modes []domain.PaymentMode
	err := r.db.SelectContext(ctx, &modes,
		"SELECT * FROM payment_modes WHERE is_active = TRUE ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("paymentModeRepo.ListActive: %w", err)
	}
	return modes, nil
}

func (r *paymentModeRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE payment_modes SET is_active = $1 WHERE id = $2", active, id)
	if err != nil {
		return fmt.Errorf("paymentModeRepo.SetActive: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
