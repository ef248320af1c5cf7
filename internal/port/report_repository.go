package port

import (
	"context"

	"cityfashion/internal/domain"
)

// ReportRepository reads aggregated sales data for reporting.
type ReportRepository interface {
	SalesRegister(ctx context.Context, filters *domain.ReportFilters) ([]domain.SalesRegisterRow, int, error)
}
