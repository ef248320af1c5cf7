package domain

// UserRole defines the operator role hierarchy.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCashier UserRole = "cashier"
)

// SaleStatus represents the lifecycle of a sale invoice.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusReturned  SaleStatus = "returned"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// DocumentKind selects which printable document a sale renders as.
type DocumentKind string

const (
	DocumentKindInvoice     DocumentKind = "invoice"
	DocumentKindSalesOrder  DocumentKind = "sales_order"
	DocumentKindSalesReturn DocumentKind = "sales_return"
)
