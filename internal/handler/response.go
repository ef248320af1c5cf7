package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cityfashion/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "INVALID_ROLE", "role must be admin or cashier"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already exists"
	case errors.Is(err, domain.ErrDuplicateSKU):
		return http.StatusConflict, "DUPLICATE_SKU", "product SKU already exists"
	case errors.Is(err, domain.ErrUnknownPaymentMode):
		return http.StatusBadRequest, "UNKNOWN_PAYMENT_MODE", "payment mode does not exist or is inactive"
	case errors.Is(err, domain.ErrInvalidLineItems):
		return http.StatusBadRequest, "INVALID_LINE_ITEMS", err.Error()
	case errors.Is(err, domain.ErrInvalidPayments):
		return http.StatusBadRequest, "INVALID_PAYMENTS", err.Error()
	case errors.Is(err, domain.ErrEmptySale):
		return http.StatusBadRequest, "EMPTY_SALE", "sale must contain at least one line item"
	case errors.Is(err, domain.ErrEmptyPurchase):
		return http.StatusBadRequest, "EMPTY_PURCHASE", "purchase must contain at least one line item"
	case errors.Is(err, domain.ErrSaleNotPrintable):
		return http.StatusConflict, "SALE_NOT_PRINTABLE", "sale cannot be rendered as a document in its current status"
	case errors.Is(err, domain.ErrDocumentArchive):
		return http.StatusInternalServerError, "ARCHIVE_FAILED", "archiving document to storage failed"
	case errors.Is(err, domain.ErrCustomerWithoutEmail):
		return http.StatusBadRequest, "CUSTOMER_WITHOUT_EMAIL", "customer has no email address on record"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
