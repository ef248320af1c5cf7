package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityfashion/internal/service"
)

func previewRouterForTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewInvoiceHandler(service.NewInvoiceService())
	r.POST("/api/v1/invoices/preview", h.Preview)
	return r
}

func TestInvoicePreviewEndpoint(t *testing.T) {
	r := previewRouterForTest()

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"description":      "Cotton Shirt",
				"quantity":         2,
				"unit_price":       100,
				"discount_percent": 10,
				"tax_percent":      18,
			},
		},
		"payments": []map[string]interface{}{
			{"mode_id": "cash", "amount": 200},
		},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/preview", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    service.PreviewResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, 212.40, resp.Data.Items[0].Total)
	assert.Equal(t, 236.0, resp.Data.Totals.GrandTotal)
	assert.Equal(t, 36.0, resp.Data.Reconciliation.Due)
	assert.Equal(t, "Two Hundred Thirty Six Rupees Only", resp.Data.TotalInWords)
	assert.Empty(t, resp.Data.ItemErrors)
}

func TestInvoicePreviewEndpointBadJSON(t *testing.T) {
	r := previewRouterForTest()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/preview", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
