package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cityfashion/internal/domain"
	"cityfashion/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

// reportWhereClause constructs a dynamic WHERE clause for joined sales
// queries. It returns the clause string (starting with "WHERE") and the
// positional arguments.
func reportWhereClause(filters *domain.ReportFilters) (clause string, args []interface{}) {
	clause = "WHERE s.status != 'cancelled'"
	argN := 1

	if filters.From != nil {
		clause += fmt.Sprintf(" AND s.invoice_date >= $%d", argN)
		args = append(args, *filters.From)
		argN++
	}
	if filters.To != nil {
		clause += fmt.Sprintf(" AND s.invoice_date <= $%d", argN)
		args = append(args, *filters.To)
		argN++
	}
	if filters.CustomerID != nil {
		clause += fmt.Sprintf(" AND s.customer_id = $%d", argN)
		args = append(args, *filters.CustomerID)
	}
	return clause, args
}

func (r *reportRepo) SalesRegister(ctx context.Context, filters *domain.ReportFilters) ([]domain.SalesRegisterRow, int, error) {
	where, args := reportWhereClause(filters)

	dataQuery := fmt.Sprintf(`SELECT
		s.invoice_number, s.invoice_date,
		COALESCE(c.name, '') AS customer_name,
		s.subtotal, s.discount, s.tax, s.grand_total, s.total_paid, s.due
	FROM sales s
	LEFT JOIN customers c ON c.id = s.customer_id
	%s
	ORDER BY s.invoice_date ASC, s.invoice_number ASC
	OFFSET %d LIMIT %d`, where, filters.Offset, filters.Limit)

	var rows []domain.SalesRegisterRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, dataQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("reportRepo.SalesRegister data: %w", err)
	}

	countQuery := "SELECT COUNT(*) FROM sales s " + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("reportRepo.SalesRegister count: %w", err)
	}

	return rows, total, nil
}
