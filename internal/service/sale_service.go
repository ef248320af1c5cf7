package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cityfashion/internal/billing"
	"cityfashion/internal/config"
	"cityfashion/internal/domain"
	"cityfashion/internal/port"
)

// SaleLineInput is one line of a sale as submitted by the entry screen.
type SaleLineInput struct {
	ProductID       *uuid.UUID `json:"product_id"`
	Description     string     `json:"description"`
	HSNCode         string     `json:"hsn_code"`
	Quantity        float64    `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	DiscountPercent float64    `json:"discount_percent"`
	TaxPercent      float64    `json:"tax_percent"`
}

// SalePaymentInput is one row of the payment breakup.
type SalePaymentInput struct {
	ModeID uuid.UUID `json:"mode_id" binding:"required"`
	Amount float64   `json:"amount"`
}

// CreateSaleInput is the DTO for sale creation. The screen submits the raw
// inputs; all derived figures are recomputed here and those are what get
// stored.
type CreateSaleInput struct {
	InvoiceDate            time.Time          `json:"invoice_date"`
	CustomerID             *uuid.UUID         `json:"customer_id"`
	Items                  []SaleLineInput    `json:"items" binding:"required"`
	InvoiceDiscountPercent float64            `json:"invoice_discount_percent"`
	Payments               []SalePaymentInput `json:"payments"`
}

// CreateSaleResult is the persisted sale plus its derived figures.
type CreateSaleResult struct {
	Sale           domain.Sale            `json:"sale"`
	Items          []domain.SaleItem      `json:"items"`
	Totals         billing.Totals         `json:"totals"`
	Reconciliation billing.Reconciliation `json:"reconciliation"`
}

// SaleService creates and reads sale invoices.
type SaleService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateSaleInput) (*CreateSaleResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, []domain.SaleItem, []domain.SalePayment, error)
	List(ctx context.Context, filters *domain.ReportFilters) ([]domain.Sale, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SaleStatus) error
}

type saleService struct {
	saleRepo    port.SaleRepository
	productRepo port.ProductRepository
	customerRepo port.CustomerRepository
	modeRepo    port.PaymentModeRepository
	store       config.StoreConfig
}

// NewSaleService creates a new SaleService implementation.
func NewSaleService(
	saleRepo port.SaleRepository,
	productRepo port.ProductRepository,
	customerRepo port.CustomerRepository,
	modeRepo port.PaymentModeRepository,
	store config.StoreConfig,
) SaleService {
	return &saleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		modeRepo:     modeRepo,
		store:        store,
	}
}

func (s *saleService) Create(ctx context.Context, userID uuid.UUID, input CreateSaleInput) (*CreateSaleResult, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptySale
	}

	interState, err := s.isInterState(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	lineItems := make([]billing.LineItem, len(input.Items))
	for i, in := range input.Items {
		lineItems[i] = billing.LineItem{
			Description:     in.Description,
			HSNCode:         in.HSNCode,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			DiscountPercent: in.DiscountPercent,
			TaxPercent:      in.TaxPercent,
			InterState:      interState,
		}
	}
	if errs := billing.ValidateLineItems(lineItems); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidLineItems, errs[0].Error())
	}

	entries := make([]billing.PaymentEntry, len(input.Payments))
	for i, p := range input.Payments {
		entries[i] = billing.PaymentEntry{ModeID: p.ModeID.String(), Amount: p.Amount}
	}
	if errs := billing.ValidatePayments(entries); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPayments, errs[0].Error())
	}
	for _, p := range input.Payments {
		mode, err := s.modeRepo.GetByID(ctx, p.ModeID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrUnknownPaymentMode
			}
			return nil, fmt.Errorf("saleService.Create mode lookup: %w", err)
		}
		if !mode.IsActive {
			return nil, domain.ErrUnknownPaymentMode
		}
	}

	// The stored figures are recomputed here from the raw inputs. The screen
	// shows the same numbers via the preview endpoint, but only this pass is
	// authoritative.
	computed := billing.ComputeLineItems(lineItems)
	totals := billing.Aggregate(computed, input.InvoiceDiscountPercent)
	rec := billing.Reconcile(entries, totals.RoundedTotal)

	invoiceNumber, err := s.saleRepo.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("saleService.Create: %w", err)
	}

	invoiceDate := input.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now().UTC()
	}

	sale := domain.Sale{
		InvoiceNumber:   invoiceNumber,
		InvoiceDate:     invoiceDate,
		CustomerID:      input.CustomerID,
		DiscountPercent: input.InvoiceDiscountPercent,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		Tax:             totals.Tax,
		GrandTotal:      totals.GrandTotal,
		RoundedTotal:    totals.RoundedTotal,
		TotalPaid:       rec.TotalPaid,
		Due:             rec.Due,
		Status:          domain.SaleStatusCompleted,
		CreatedBy:       userID,
	}

	items := make([]domain.SaleItem, len(computed))
	for i, c := range computed {
		items[i] = domain.SaleItem{
			LineNo:          i + 1,
			ProductID:       input.Items[i].ProductID,
			Description:     c.Description,
			HSNCode:         c.HSNCode,
			Quantity:        c.Quantity,
			UnitPrice:       c.UnitPrice,
			DiscountPercent: c.DiscountPercent,
			TaxPercent:      c.TaxPercent,
			InterState:      c.InterState,
			TaxAmount:       billing.Round2(c.TaxAmount),
			DiscountAmount:  billing.Round2(c.DiscountAmount),
			Total:           c.Total,
		}
	}

	payments := make([]domain.SalePayment, len(input.Payments))
	for i, p := range input.Payments {
		payments[i] = domain.SalePayment{ModeID: p.ModeID, Amount: p.Amount}
	}

	if err := s.saleRepo.Create(ctx, &sale, items, payments); err != nil {
		return nil, fmt.Errorf("saleService.Create: %w", err)
	}

	// Stock decrements are best-effort per product; a missing product row
	// does not undo a committed sale.
	for i := range items {
		if items[i].ProductID == nil {
			continue
		}
		if err := s.productRepo.AdjustStock(ctx, *items[i].ProductID, -items[i].Quantity); err != nil &&
			!errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("saleService.Create stock: %w", err)
		}
	}

	return &CreateSaleResult{
		Sale:           sale,
		Items:          items,
		Totals:         totals,
		Reconciliation: rec,
	}, nil
}

// isInterState decides the tax regime for the whole sale by comparing the
// customer's state code with the store's. Walk-in sales with no customer on
// record are intra-state.
func (s *saleService) isInterState(ctx context.Context, customerID *uuid.UUID) (bool, error) {
	if customerID == nil {
		return false, nil
	}
	customer, err := s.customerRepo.GetByID(ctx, *customerID)
	if err != nil {
		return false, fmt.Errorf("saleService customer lookup: %w", err)
	}
	return customer.StateCode != "" && customer.StateCode != s.store.StateCode, nil
}

func (s *saleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, []domain.SaleItem, []domain.SalePayment, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := s.saleRepo.GetItems(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	payments, err := s.saleRepo.GetPayments(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	return sale, items, payments, nil
}

func (s *saleService) List(ctx context.Context, filters *domain.ReportFilters) ([]domain.Sale, int, error) {
	return s.saleRepo.List(ctx, filters)
}

func (s *saleService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SaleStatus) error {
	return s.saleRepo.UpdateStatus(ctx, id, status)
}
