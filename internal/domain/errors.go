package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrInvalidRole          = errors.New("unknown user role")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateSKU         = errors.New("product SKU already exists")
	ErrUnknownPaymentMode   = errors.New("payment mode does not exist or is inactive")
	ErrInvalidLineItems     = errors.New("one or more line items are invalid")
	ErrInvalidPayments      = errors.New("one or more payment rows are invalid")
	ErrEmptySale            = errors.New("sale must contain at least one line item")
	ErrEmptyPurchase        = errors.New("purchase must contain at least one line item")
	ErrSaleNotPrintable     = errors.New("sale cannot be rendered as a document in its current status")
	ErrDocumentArchive      = errors.New("archiving document to storage failed")
	ErrCustomerWithoutEmail = errors.New("customer has no email address on record")
)
