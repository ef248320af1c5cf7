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

type saleRepo struct {
	db *sqlx.DB
}

// NewSaleRepo creates a new PostgreSQL-backed SaleRepository.
func NewSaleRepo(db *sqlx.DB) port.SaleRepository {
	return &saleRepo{db: db}
}

func (r *saleRepo) Create(ctx context.Context, sale *domain.Sale, items []domain.SaleItem, payments []domain.SalePayment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("saleRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	sale.ID = uuid.New()
	sale.CreatedAt = now
	sale.UpdatedAt = now

	saleQuery := `INSERT INTO sales (id, invoice_number, invoice_date, customer_id, discount_percent,
		subtotal, discount, tax, grand_total, rounded_total, total_paid, due, status,
		created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = tx.ExecContext(ctx, saleQuery,
		sale.ID, sale.InvoiceNumber, sale.InvoiceDate, sale.CustomerID, sale.DiscountPercent,
		sale.Subtotal, sale.Discount, sale.Tax, sale.GrandTotal, sale.RoundedTotal,
		sale.TotalPaid, sale.Due, sale.Status, sale.CreatedBy, sale.CreatedAt, sale.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saleRepo.Create sale: %w", err)
	}

	itemQuery := `INSERT INTO sale_items (id, sale_id, line_no, product_id, description, hsn_code, quantity,
		unit_price, discount_percent, tax_percent, inter_state, tax_amount, discount_amount, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	for i := range items {
		items[i].ID = uuid.New()
		items[i].SaleID = sale.ID
		item := &items[i]
		_, err = tx.ExecContext(ctx, itemQuery,
			item.ID, item.SaleID, item.LineNo, item.ProductID, item.Description, item.HSNCode, item.Quantity,
			item.UnitPrice, item.DiscountPercent, item.TaxPercent, item.InterState,
			item.TaxAmount, item.DiscountAmount, item.Total)
		if err != nil {
			return fmt.Errorf("saleRepo.Create item %d: %w", i, err)
		}
	}

	paymentQuery := `INSERT INTO sale_payments (id, sale_id, mode_id, amount) VALUES ($1, $2, $3, $4)`
	for i := range payments {
		payments[i].ID = uuid.New()
		payments[i].SaleID = sale.ID
		p := &payments[i]
		if _, err = tx.ExecContext(ctx, paymentQuery, p.ID, p.SaleID, p.ModeID, p.Amount); err != nil {
			return fmt.Errorf("saleRepo.Create payment %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saleRepo.Create commit: %w", err)
	}
	return nil
}

func (r *saleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	var sale domain.Sale
	err := r.db.GetContext(ctx, &sale, "SELECT * FROM sales WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("saleRepo.GetByID: %w", err)
	}
	return &sale, nil
}

func (r *saleRepo) GetItems(ctx context.Context, saleID uuid.UUID) ([]domain.SaleItem, error) {
	var items []domain.SaleItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM sale_items WHERE sale_id = $1 ORDER BY line_no", saleID)
	if err != nil {
		return nil, fmt.Errorf("saleRepo.GetItems: %w", err)
	}
	return items, nil
}

func (r *saleRepo) GetPayments(ctx context.Context, saleID uuid.UUID) ([]domain.SalePayment, error) {
	var payments []domain.SalePayment
	err := r.db.SelectContext(ctx, &payments,
		"SELECT * FROM sale_payments WHERE sale_id = $1 ORDER BY id", saleID)
	if err != nil {
		return nil, fmt.Errorf("saleRepo.GetPayments: %w", err)
	}
	return payments, nil
}

func (r *saleRepo) List(ctx context.Context, filters *domain.ReportFilters) ([]domain.Sale, int, error) {
	where, args := saleWhereClause(filters)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM sales "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("saleRepo.List count: %w", err)
	}

	dataQuery := fmt.Sprintf("SELECT * FROM sales %s ORDER BY invoice_date DESC, created_at DESC LIMIT %d OFFSET %d",
		where, filters.Limit, filters.Offset)
	var sales []domain.Sale
	if err := r.db.SelectContext(ctx, &sales, dataQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("saleRepo.List: %w", err)
	}
	return sales, total, nil
}

func (r *saleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SaleStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE sales SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("saleRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *saleRepo) NextInvoiceNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, "SELECT nextval('invoice_number_seq')"); err != nil {
		return "", fmt.Errorf("saleRepo.NextInvoiceNumber: %w", err)
	}
	return fmt.Sprintf("INV-%06d", n), nil
}

// saleWhereClause builds a dynamic WHERE clause for sales queries.
func saleWhereClause(filters *domain.ReportFilters) (string, []interface{}) {
	clause := "WHERE 1=1"
	args := []interface{}{}
	argN := 1

	if filters.From != nil {
		clause += fmt.Sprintf(" AND invoice_date >= $%d", argN)
		args = append(args, *filters.From)
		argN++
	}
	if filters.To != nil {
		clause += fmt.Sprintf(" AND invoice_date <= $%d", argN)
		args = append(args, *filters.To)
		argN++
	}
	if filters.CustomerID != nil {
		clause += fmt.Sprintf(" AND customer_id = $%d", argN)
		args = append(args, *filters.CustomerID)
	}
	return clause, args
}
