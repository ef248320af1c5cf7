package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cityfashion/internal/domain"
	"cityfashion/internal/service"
)

// DocumentHandler handles printable document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// kinds maps the kind query param to a document kind.
var kinds = map[string]domain.DocumentKind{
	"":             domain.DocumentKindInvoice,
	"invoice":      domain.DocumentKindInvoice,
	"sales_order":  domain.DocumentKindSalesOrder,
	"sales_return": domain.DocumentKindSalesReturn,
}

// RenderPDF handles GET /api/v1/sales/:id/pdf?kind=invoice
// @Summary      Render a sale as PDF
// @Tags         documents
// @Produce      application/pdf
// @Param        id path string true "Sale UUID"
// @Param        kind query string false "Document kind: invoice, sales_order, or sales_return" default(invoice)
// @Success      200 {file} binary
// @Failure      404 {object} APIResponse
// @Router       /sales/{id}/pdf [get]
func (h *DocumentHandler) RenderPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid sale id")
		return
	}

	kind, ok := kinds[c.Query("kind")]
	if !ok {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "kind must be invoice, sales_order, or sales_return")
		return
	}

	pdf, filename, err := h.documentService.Render(c.Request.Context(), id, kind)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// EmailInvoice handles POST /api/v1/sales/:id/email
func (h *DocumentHandler) EmailInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid sale id")
		return
	}

	if err := h.documentService.EmailInvoice(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice emailed"})
}
