package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cityfashion/internal/service"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var input service.PartyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, customer)
}

// List handles GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	customers, total, err := h.customerService.List(c.Request.Context(), c.Query("search"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, customers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid customer id")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, customer)
}

// Update handles PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid customer id")
		return
	}

	var input service.PartyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, customer)
}

// Delete handles DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid customer id")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "customer deleted"})
}

// SupplierHandler handles supplier endpoints.
type SupplierHandler struct {
	supplierService service.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(supplierService service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// Create handles POST /api/v1/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var input service.PartyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, supplier)
}

// List handles GET /api/v1/suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	suppliers, total, err := h.supplierService.List(c.Request.Context(), c.Query("search"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, suppliers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/suppliers/:id
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid supplier id")
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, supplier)
}

// Update handles PUT /api/v1/suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid supplier id")
		return
	}

	var input service.PartyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, supplier)
}

// Delete handles DELETE /api/v1/suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid supplier id")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "supplier deleted"})
}

// PaymentModeHandler handles payment mode endpoints.
type PaymentModeHandler struct {
	modeService service.PaymentModeService
}

// NewPaymentModeHandler creates a new PaymentModeHandler.
func NewPaymentModeHandler(modeService service.PaymentModeService) *PaymentModeHandler {
	return &PaymentModeHandler{modeService: modeService}
}

// createModeInput is the payment mode creation request body.
type createModeInput struct {
	Name string `json:"name" binding:"required"`
}

// Create handles POST /api/v1/payment-modes
func (h *PaymentModeHandler) Create(c *gin.Context) {
	var input createModeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	mode, err := h.modeService.Create(c.Request.Context(), input.Name)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, mode)
}

// ListActive handles GET /api/v1/payment-modes
func (h *PaymentModeHandler) ListActive(c *gin.Context) {
	modes, err := h.modeService.ListActive(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, modes)
}

// SetActive handles PATCH /api/v1/payment-modes/:id/active
func (h *PaymentModeHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payment mode id")
		return
	}

	var input setActiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.modeService.SetActive(c.Request.Context(), id, *input.IsActive); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "payment mode updated"})
}
