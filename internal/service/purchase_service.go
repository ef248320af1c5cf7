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

// PurchaseLineInput is one line of a supplier bill as entered.
type PurchaseLineInput struct {
	ProductID       *uuid.UUID `json:"product_id"`
	Description     string     `json:"description"`
	HSNCode         string     `json:"hsn_code"`
	Quantity        float64    `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	DiscountPercent float64    `json:"discount_percent"`
	TaxPercent      float64    `json:"tax_percent"`
}

// CreatePurchaseInput is the DTO for purchase entry. The supplier's bill
// number is keyed in as printed; only the figures are recomputed.
type CreatePurchaseInput struct {
	BillNumber             string              `json:"bill_number" binding:"required"`
	BillDate               time.Time           `json:"bill_date"`
	SupplierID             *uuid.UUID          `json:"supplier_id"`
	Items                  []PurchaseLineInput `json:"items" binding:"required"`
	InvoiceDiscountPercent float64             `json:"invoice_discount_percent"`
}

// CreatePurchaseResult is the persisted purchase plus its derived figures.
type CreatePurchaseResult struct {
	Purchase domain.Purchase       `json:"purchase"`
	Items    []domain.PurchaseItem `json:"items"`
	Totals   billing.Totals        `json:"totals"`
}

// PurchaseService records supplier bills and restocks inventory.
type PurchaseService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreatePurchaseInput) (*CreatePurchaseResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, []domain.PurchaseItem, error)
	List(ctx context.Context, filters *domain.ReportFilters) ([]domain.Purchase, int, error)
}

type purchaseService struct {
	purchaseRepo port.PurchaseRepository
	productRepo  port.ProductRepository
	supplierRepo port.SupplierRepository
	store        config.StoreConfig
}

// NewPurchaseService creates a new PurchaseService implementation.
func NewPurchaseService(
	purchaseRepo port.PurchaseRepository,
	productRepo port.ProductRepository,
	supplierRepo port.SupplierRepository,
	store config.StoreConfig,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		store:        store,
	}
}

func (s *purchaseService) Create(ctx context.Context, userID uuid.UUID, input CreatePurchaseInput) (*CreatePurchaseResult, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyPurchase
	}

	interState := false
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("purchaseService supplier lookup: %w", err)
		}
		interState = supplier.StateCode != "" && supplier.StateCode != s.store.StateCode
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

	computed := billing.ComputeLineItems(lineItems)
	totals := billing.Aggregate(computed, input.InvoiceDiscountPercent)

	billDate := input.BillDate
	if billDate.IsZero() {
		billDate = time.Now().UTC()
	}

	purchase := domain.Purchase{
		BillNumber:      input.BillNumber,
		BillDate:        billDate,
		SupplierID:      input.SupplierID,
		DiscountPercent: input.InvoiceDiscountPercent,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		Tax:             totals.Tax,
		GrandTotal:      totals.GrandTotal,
		RoundedTotal:    totals.RoundedTotal,
		CreatedBy:       userID,
	}

	items := make([]domain.PurchaseItem, len(computed))
	for i, c := range computed {
		items[i] = domain.PurchaseItem{
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

	if err := s.purchaseRepo.Create(ctx, &purchase, items); err != nil {
		return nil, fmt.Errorf("purchaseService.Create: %w", err)
	}

	for i := range items {
		if items[i].ProductID == nil {
			continue
		}
		if err := s.productRepo.AdjustStock(ctx, *items[i].ProductID, items[i].Quantity); err != nil &&
			!errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("purchaseService.Create stock: %w", err)
		}
	}

	return &CreatePurchaseResult{Purchase: purchase, Items: items, Totals: totals}, nil
}

func (s *purchaseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, []domain.PurchaseItem, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.purchaseRepo.GetItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return purchase, items, nil
}

func (s *purchaseService) List(ctx context.Context, filters *domain.ReportFilters) ([]domain.Purchase, int, error) {
	return s.purchaseRepo.List(ctx, filters)
}
