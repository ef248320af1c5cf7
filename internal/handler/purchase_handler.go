package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cityfashion/internal/middleware"
	"cityfashion/internal/service"
)

// PurchaseHandler handles purchase invoice endpoints.
type PurchaseHandler struct {
	purchaseService service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create handles POST /api/v1/purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.CreatePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.purchaseService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// List handles GET /api/v1/purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	purchases, total, err := h.purchaseService.List(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, purchases, PagMeta{Total: total, Offset: filters.Offset, Limit: filters.Limit})
}

// GetByID handles GET /api/v1/purchases/:id
func (h *PurchaseHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid purchase id")
		return
	}

	purchase, items, err := h.purchaseService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"purchase": purchase, "items": items})
}
