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

type supplierRepo struct {
	db *sqlx.DB
}

// NewSupplierRepo creates a new PostgreSQL-backed SupplierRepository.
func NewSupplierRepo(db *sqlx.DB) port.SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, s *domain.Supplier) error {
	s.ID = uuid.New()
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `INSERT INTO suppliers (id, name, phone, email, address, gstin, state_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Phone, s.Email, s.Address, s.GSTIN, s.StateCode, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("supplierRepo.Create: %w", err)
	}
	return nil
}

func (r *supplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	var s domain.Supplier
	err := r.db.GetContext(ctx, &s, "SELECT * FROM suppliers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("supplierRepo.GetByID: %w", err)
	}
	return &s, nil
}

func (r *supplierRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Supplier, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = "WHERE name ILIKE $1 OR phone ILIKE $1 OR gstin ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM suppliers "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("supplierRepo.List count: %w", err)
	}

	dataQuery := fmt.Sprintf("SELECT * FROM suppliers %s ORDER BY name ASC LIMIT %d OFFSET %d",
		where, limit, offset)
	var suppliers []domain.Supplier
	if err := r.db.SelectContext(ctx, &suppliers, dataQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("supplierRepo.List: %w", err)
	}
	return suppliers, total, nil
}

func (r *supplierRepo) Update(ctx context.Context, s *domain.Supplier) error {
	s.UpdatedAt = time.Now().UTC()
	query := `UPDATE suppliers SET name = $1, phone = $2, email = $3, address = $4,
		gstin = $5, state_code = $6, updated_at = $7 WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		s.Name, s.Phone, s.Email, s.Address, s.GSTIN, s.StateCode, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("supplierRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *supplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("supplierRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
