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

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *domain.Customer) error {
	c.ID = uuid.New()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `INSERT INTO customers (id, name, phone, email, address, gstin, state_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.GSTIN, c.StateCode, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.GetContext(ctx, &c, "SELECT * FROM customers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = "WHERE name ILIKE $1 OR phone ILIKE $1 OR gstin ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM customers "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List count: %w", err)
	}

	dataQuery := fmt.Sprintf("SELECT * FROM customers %s ORDER BY name ASC LIMIT %d OFFSET %d",
		where, limit, offset)
	var customers []domain.Customer
	if err := r.db.SelectContext(ctx, &customers, dataQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List: %w", err)
	}
	return customers, total, nil
}

func (r *customerRepo) Update(ctx context.Context, c *domain.Customer) error {
	c.UpdatedAt = time.Now().UTC()
	query := `UPDATE customers SET name = $1, phone = $2, email = $3, address = $4,
		gstin = $5, state_code = $6, updated_at = $7 WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		c.Name, c.Phone, c.Email, c.Address, c.GSTIN, c.StateCode, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("customerRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("customerRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
