package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cityfashion/internal/service"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, product)
}

// List handles GET /api/v1/products
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        search query string false "Name or SKU search"
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.Product,meta=PagMeta}
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	products, total, err := h.productService.List(c.Request.Context(), c.Query("search"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, products, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid product id")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// Update handles PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid product id")
		return
	}

	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// Delete handles DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid product id")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "product deleted"})
}
