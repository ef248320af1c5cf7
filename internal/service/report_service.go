package service

import (
	"context"
	"fmt"
	"io"

	"cityfashion/internal/domain"
	"cityfashion/internal/port"
	"cityfashion/internal/xlsxexport"
)

// ReportService produces the date-ranged sales register and its xlsx export.
type ReportService interface {
	SalesRegister(ctx context.Context, filters *domain.ReportFilters) ([]domain.SalesRegisterRow, int, error)
	ExportSalesRegister(ctx context.Context, w io.Writer, filters *domain.ReportFilters) error
}

type reportService struct {
	repo port.ReportRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(repo port.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) SalesRegister(ctx context.Context, filters *domain.ReportFilters) ([]domain.SalesRegisterRow, int, error) {
	return s.repo.SalesRegister(ctx, filters)
}

// exportBatchSize bounds each register page fetched during export.
const exportBatchSize = 500

func (s *reportService) ExportSalesRegister(ctx context.Context, w io.Writer, filters *domain.ReportFilters) error {
	// Exports ignore the caller's pagination and stream the whole range.
	paged := *filters
	paged.Offset = 0
	paged.Limit = exportBatchSize

	var all []domain.SalesRegisterRow
	for {
		rows, total, err := s.repo.SalesRegister(ctx, &paged)
		if err != nil {
			return fmt.Errorf("reportService.ExportSalesRegister: %w", err)
		}
		all = append(all, rows...)
		paged.Offset += len(rows)
		if len(rows) == 0 || paged.Offset >= total {
			break
		}
	}

	return xlsxexport.WriteSalesRegister(w, all)
}
