package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cityfashion/internal/domain"
	"cityfashion/internal/middleware"
	"cityfashion/internal/service"
)

// SaleHandler handles sale invoice endpoints.
type SaleHandler struct {
	saleService service.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles POST /api/v1/sales
// @Summary      Record a sale
// @Description  Validates line items and payments, computes all figures server-side, reserves the next invoice number, and adjusts stock
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body body service.CreateSaleInput true "Sale"
// @Success      201 {object} APIResponse{data=service.CreateSaleResult}
// @Failure      400 {object} APIResponse
// @Router       /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.saleService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// List handles GET /api/v1/sales
func (h *SaleHandler) List(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sales, total, err := h.saleService.List(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, sales, PagMeta{Total: total, Offset: filters.Offset, Limit: filters.Limit})
}

// GetByID handles GET /api/v1/sales/:id
func (h *SaleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid sale id")
		return
	}

	sale, items, payments, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"sale": sale, "items": items, "payments": payments})
}

// updateStatusInput is the sale status change request body.
type updateStatusInput struct {
	Status domain.SaleStatus `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /api/v1/sales/:id/status
func (h *SaleHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid sale id")
		return
	}

	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	switch input.Status {
	case domain.SaleStatusCompleted, domain.SaleStatusReturned, domain.SaleStatusCancelled:
	default:
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be completed, returned, or cancelled")
		return
	}

	if err := h.saleService.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "sale status updated"})
}
