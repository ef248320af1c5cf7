package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cityfashion/internal/service"
)

// InvoiceHandler handles live invoice computation endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Preview handles POST /api/v1/invoices/preview
// @Summary      Preview invoice figures
// @Description  Computes per-line figures, totals, the tax summary table, paid/due position, and the amount in words for a draft invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body body service.PreviewInput true "Draft invoice"
// @Success      200 {object} APIResponse{data=service.PreviewResult}
// @Failure      400 {object} APIResponse
// @Router       /invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var input service.PreviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, h.invoiceService.Preview(input))
}
