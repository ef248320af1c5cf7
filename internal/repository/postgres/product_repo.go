package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cityfashion/internal/domain"
	"cityfashion/internal/port"
)

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *domain.Product) error {
	p.ID = uuid.New()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO products (id, name, sku, hsn_code, unit, sale_price, purchase_price,
		tax_percent, stock_qty, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.SKU, p.HSNCode, p.Unit, p.SalePrice, p.PurchasePrice,
		p.TaxPercent, p.StockQty, p.IsActive, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("productRepo.Create: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error) {
	where := "WHERE is_active = TRUE"
	args := []interface{}{}
	if search != "" {
		where += " AND (name ILIKE $1 OR sku ILIKE $1 OR hsn_code ILIKE $1)"
		args = append(args, "%"+search+"%")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM products " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("productRepo.List count: %w", err)
	}

	dataQuery := fmt.Sprintf("SELECT * FROM products %s ORDER BY name ASC LIMIT %d OFFSET %d",
		where, limit, offset)
	var products []domain.Product
	if err := r.db.SelectContext(ctx, &products, dataQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("productRepo.List: %w", err)
	}
	return products, total, nil
}

func (r *productRepo) Update(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = time.Now().UTC()
	query := `UPDATE products SET name = $1, sku = $2, hsn_code = $3, unit = $4, sale_price = $5,
		purchase_price = $6, tax_percent = $7, is_active = $8, updated_at = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.SKU, p.HSNCode, p.Unit, p.SalePrice,
		p.PurchasePrice, p.TaxPercent, p.IsActive, p.UpdatedAt, p.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("productRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepo) AdjustStock(ctx context.Context, id uuid.UUID, delta float64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE products SET stock_qty = stock_qty + $1, updated_at = $2 WHERE id = $3",
		delta, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("productRepo.AdjustStock: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE products SET is_active = FALSE, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("productRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
