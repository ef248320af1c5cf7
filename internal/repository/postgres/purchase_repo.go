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

type purchaseRepo struct {
	db *sqlx.DB
}

// NewPurchaseRepo creates a new PostgreSQL-backed PurchaseRepository.
func NewPurchaseRepo(db *sqlx.DB) port.PurchaseRepository {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) Create(ctx context.Context, purchase *domain.Purchase, items []domain.PurchaseItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("purchaseRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	purchase.ID = uuid.New()
	purchase.CreatedAt = now
	purchase.UpdatedAt = now

	purchaseQuery := `INSERT INTO purchases (id, bill_number, bill_date, supplier_id, discount_percent,
		subtotal, discount, tax, grand_total, rounded_total, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.ExecContext(ctx, purchaseQuery,
		purchase.ID, purchase.BillNumber, purchase.BillDate, purchase.SupplierID, purchase.DiscountPercent,
		purchase.Subtotal, purchase.Discount, purchase.Tax, purchase.GrandTotal, purchase.RoundedTotal,
		purchase.CreatedBy, purchase.CreatedAt, purchase.UpdatedAt)
	if err != nil {
		return fmt.Errorf("purchaseRepo.Create purchase: %w", err)
	}

	itemQuery := `INSERT INTO purchase_items (id, purchase_id, line_no, product_id, description, hsn_code, quantity,
		unit_price, discount_percent, tax_percent, inter_state, tax_amount, discount_amount, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	for i := range items {
		items[i].ID = uuid.New()
		items[i].PurchaseID = purchase.ID
		item := &items[i]
		_, err = tx.ExecContext(ctx, itemQuery,
			item.ID, item.PurchaseID, item.LineNo, item.ProductID, item.Description, item.HSNCode, item.Quantity,
			item.UnitPrice, item.DiscountPercent, item.TaxPercent, item.InterState,
			item.TaxAmount, item.DiscountAmount, item.Total)
		if err != nil {
			return fmt.Errorf("purchaseRepo.Create item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("purchaseRepo.Create commit: %w", err)
	}
	return nil
}

func (r *purchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := r.db.GetContext(ctx, &purchase, "SELECT * FROM purchases WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("purchaseRepo.GetByID: %w", err)
	}
	return &purchase, nil
}

func (r *purchaseRepo) GetItems(ctx context.Context, purchaseID uuid.UUID) ([]domain.PurchaseItem, error) {
	var items []domain.PurchaseItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM purchase_items WHERE purchase_id = $1 ORDER BY line_no", purchaseID)
	if err != nil {
		return nil, fmt.Errorf("purchaseRepo.GetItems: %w", err)
	}
	return items, nil
}

func (r *purchaseRepo) List(ctx context.Context, filters *domain.ReportFilters) ([]domain.Purchase, int, error) {
	clause := "WHERE 1=1"
	args := []interface{}{}
	argN := 1
	if filters.From != nil {
		clause += fmt.Sprintf(" AND bill_date >= $%d", argN)
		args = append(args, *filters.From)
		argN++
	}
	if filters.To != nil {
		clause += fmt.Sprintf(" AND bill_date <= $%d", argN)
		args = append(args, *filters.To)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM purchases "+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("purchaseRepo.List count: %w", err)
	}

	dataQuery := fmt.Sprintf("SELECT * FROM purchases %s ORDER BY bill_date DESC, created_at DESC LIMIT %d OFFSET %d",
		clause, filters.Limit, filters.Offset)
	var purchases []domain.Purchase
	if err := r.db.SelectContext(ctx, &purchases, dataQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("purchaseRepo.List: %w", err)
	}
	return purchases, total, nil
}
