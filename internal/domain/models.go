package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a console operator (cashier or admin).
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Product is a sellable item with its HSN code and GST rate.
type Product struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	SKU           string    `db:"sku" json:"sku"`
	HSNCode       string    `db:"hsn_code" json:"hsn_code"`
	Unit          string    `db:"unit" json:"unit"`
	SalePrice     float64   `db:"sale_price" json:"sale_price"`
	PurchasePrice float64   `db:"purchase_price" json:"purchase_price"`
	TaxPercent    float64   `db:"tax_percent" json:"tax_percent"`
	StockQty      float64   `db:"stock_qty" json:"stock_qty"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is a buyer on sale invoices.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Address   string    `db:"address" json:"address"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	StateCode string    `db:"state_code" json:"state_code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Supplier is the counterparty on purchase invoices.
type Supplier struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Address   string    `db:"address" json:"address"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	StateCode string    `db:"state_code" json:"state_code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PaymentMode is a configured tender type (cash, card, UPI, ...).
type PaymentMode struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Sale is a persisted sale invoice. The stored totals are the authoritative
// figures, recomputed server-side from the raw line inputs at creation time.
type Sale struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	InvoiceNumber   string     `db:"invoice_number" json:"invoice_number"`
	InvoiceDate     time.Time  `db:"invoice_date" json:"invoice_date"`
	CustomerID      *uuid.UUID `db:"customer_id" json:"customer_id"`
	DiscountPercent float64    `db:"discount_percent" json:"discount_percent"`
	Subtotal        float64    `db:"subtotal" json:"subtotal"`
	Discount        float64    `db:"discount" json:"discount"`
	Tax             float64    `db:"tax" json:"tax"`
	GrandTotal      float64    `db:"grand_total" json:"grand_total"`
	RoundedTotal    float64    `db:"rounded_total" json:"rounded_total"`
	TotalPaid       float64    `db:"total_paid" json:"total_paid"`
	Due             float64    `db:"due" json:"due"`
	Status          SaleStatus `db:"status" json:"status"`
	CreatedBy       uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// SaleItem is one stored line of a sale, raw inputs plus derived figures.
// LineNo preserves entry order so reprints list items as keyed in.
type SaleItem struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	SaleID          uuid.UUID  `db:"sale_id" json:"sale_id"`
	LineNo          int        `db:"line_no" json:"line_no"`
	ProductID       *uuid.UUID `db:"product_id" json:"product_id"`
	Description     string     `db:"description" json:"description"`
	HSNCode         string     `db:"hsn_code" json:"hsn_code"`
	Quantity        float64    `db:"quantity" json:"quantity"`
	UnitPrice       float64    `db:"unit_price" json:"unit_price"`
	DiscountPercent float64    `db:"discount_percent" json:"discount_percent"`
	TaxPercent      float64    `db:"tax_percent" json:"tax_percent"`
	InterState      bool       `db:"inter_state" json:"inter_state"`
	TaxAmount       float64    `db:"tax_amount" json:"tax_amount"`
	DiscountAmount  float64    `db:"discount_amount" json:"discount_amount"`
	Total           float64    `db:"total" json:"total"`
}

// SalePayment is one stored row of the payment breakup of a sale.
type SalePayment struct {
	ID     uuid.UUID `db:"id" json:"id"`
	SaleID uuid.UUID `db:"sale_id" json:"sale_id"`
	ModeID uuid.UUID `db:"mode_id" json:"mode_id"`
	Amount float64   `db:"amount" json:"amount"`
}

// Purchase is a persisted purchase invoice.
type Purchase struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	BillNumber      string     `db:"bill_number" json:"bill_number"`
	BillDate        time.Time  `db:"bill_date" json:"bill_date"`
	SupplierID      *uuid.UUID `db:"supplier_id" json:"supplier_id"`
	DiscountPercent float64    `db:"discount_percent" json:"discount_percent"`
	Subtotal        float64    `db:"subtotal" json:"subtotal"`
	Discount        float64    `db:"discount" json:"discount"`
	Tax             float64    `db:"tax" json:"tax"`
	GrandTotal      float64    `db:"grand_total" json:"grand_total"`
	RoundedTotal    float64    `db:"rounded_total" json:"rounded_total"`
	CreatedBy       uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// PurchaseItem is one stored line of a purchase.
type PurchaseItem struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	PurchaseID      uuid.UUID  `db:"purchase_id" json:"purchase_id"`
	LineNo          int        `db:"line_no" json:"line_no"`
	ProductID       *uuid.UUID `db:"product_id" json:"product_id"`
	Description     string     `db:"description" json:"description"`
	HSNCode         string     `db:"hsn_code" json:"hsn_code"`
	Quantity        float64    `db:"quantity" json:"quantity"`
	UnitPrice       float64    `db:"unit_price" json:"unit_price"`
	DiscountPercent float64    `db:"discount_percent" json:"discount_percent"`
	TaxPercent      float64    `db:"tax_percent" json:"tax_percent"`
	InterState      bool       `db:"inter_state" json:"inter_state"`
	TaxAmount       float64    `db:"tax_amount" json:"tax_amount"`
	DiscountAmount  float64    `db:"discount_amount" json:"discount_amount"`
	Total           float64    `db:"total" json:"total"`
}

// SalesRegisterRow is one row of the date-ranged sales report.
type SalesRegisterRow struct {
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   time.Time `db:"invoice_date" json:"invoice_date"`
	CustomerName  string    `db:"customer_name" json:"customer_name"`
	Subtotal      float64   `db:"subtotal" json:"subtotal"`
	Discount      float64   `db:"discount" json:"discount"`
	Tax           float64   `db:"tax" json:"tax"`
	GrandTotal    float64   `db:"grand_total" json:"grand_total"`
	TotalPaid     float64   `db:"total_paid" json:"total_paid"`
	Due           float64   `db:"due" json:"due"`
}

// ReportFilters narrows report queries.
type ReportFilters struct {
	From       *time.Time
	To         *time.Time
	CustomerID *uuid.UUID
	Offset     int
	Limit      int
}
