package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"cityfashion/internal/service"
	"cityfashion/internal/xlsxexport"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SalesRegister handles GET /api/v1/reports/sales-register
// @Summary      Sales register
// @Description  Date-ranged list of sales with per-invoice totals, excluding cancelled sales
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to query string false "End date (YYYY-MM-DD)"
// @Param        customer_id query string false "Customer UUID"
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.SalesRegisterRow,meta=PagMeta}
// @Failure      400 {object} APIResponse
// @Router       /reports/sales-register [get]
func (h *ReportHandler) SalesRegister(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rows, total, err := h.reportService.SalesRegister(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, rows, PagMeta{Total: total, Offset: filters.Offset, Limit: filters.Limit})
}

// ExportSalesRegister handles GET /api/v1/reports/sales-register/export
func (h *ReportHandler) ExportSalesRegister(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.reportService.ExportSalesRegister(c.Request.Context(), &buf, filters); err != nil {
		HandleError(c, err)
		return
	}

	filename := xlsxexport.BuildFilename("sales register")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
