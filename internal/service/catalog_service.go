package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"cityfashion/internal/domain"
	"cityfashion/internal/port"
)

// ProductInput is the DTO for product create/update.
type ProductInput struct {
	Name          string  `json:"name" binding:"required"`
	SKU           string  `json:"sku" binding:"required"`
	HSNCode       string  `json:"hsn_code"`
	Unit          string  `json:"unit"`
	SalePrice     float64 `json:"sale_price"`
	PurchasePrice float64 `json:"purchase_price"`
	TaxPercent    float64 `json:"tax_percent"`
}

// ProductService manages the product catalog.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(repo port.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, input ProductInput) (*domain.Product, error) {
	p := &domain.Product{
		Name:          strings.TrimSpace(input.Name),
		SKU:           strings.TrimSpace(input.SKU),
		HSNCode:       strings.TrimSpace(input.HSNCode),
		Unit:          input.Unit,
		SalePrice:     input.SalePrice,
		PurchasePrice: input.PurchasePrice,
		TaxPercent:    input.TaxPercent,
		IsActive:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("productService.Create: %w", err)
	}
	return p, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error) {
	return s.repo.List(ctx, search, offset, limit)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = strings.TrimSpace(input.Name)
	p.SKU = strings.TrimSpace(input.SKU)
	p.HSNCode = strings.TrimSpace(input.HSNCode)
	p.Unit = input.Unit
	p.SalePrice = input.SalePrice
	p.PurchasePrice = input.PurchasePrice
	p.TaxPercent = input.TaxPercent
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("productService.Update: %w", err)
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// PartyInput is the DTO for customer and supplier create/update.
type PartyInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	GSTIN     string `json:"gstin"`
	StateCode string `json:"state_code"`
}

// CustomerService manages customer records.
type CustomerService interface {
	Create(ctx context.Context, input PartyInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, id uuid.UUID, input PartyInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, input PartyInput) (*domain.Customer, error) {
	c := &domain.Customer{
		Name:      strings.TrimSpace(input.Name),
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		GSTIN:     strings.ToUpper(strings.TrimSpace(input.GSTIN)),
		StateCode: strings.TrimSpace(input.StateCode),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("customerService.Create: %w", err)
	}
	return c, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error) {
	return s.repo.List(ctx, search, offset, limit)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, input PartyInput) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = strings.TrimSpace(input.Name)
	c.Phone = input.Phone
	c.Email = input.Email
	c.Address = input.Address
	c.GSTIN = strings.ToUpper(strings.TrimSpace(input.GSTIN))
	c.StateCode = strings.TrimSpace(input.StateCode)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("customerService.Update: %w", err)
	}
	return c, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// SupplierService manages supplier records.
type SupplierService interface {
	Create(ctx context.Context, input PartyInput) (*domain.Supplier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Supplier, int, error)
	Update(ctx context.Context, id uuid.UUID, input PartyInput) (*domain.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo port.SupplierRepository
}

// NewSupplierService creates a new SupplierService implementation.
func NewSupplierService(repo port.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, input PartyInput) (*domain.Supplier, error) {
	sup := &domain.Supplier{
		Name:      strings.TrimSpace(input.Name),
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		GSTIN:     strings.ToUpper(strings.TrimSpace(input.GSTIN)),
		StateCode: strings.TrimSpace(input.StateCode),
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, fmt.Errorf("supplierService.Create: %w", err)
	}
	return sup, nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *supplierService) List(ctx context.Context, search string, offset, limit int) ([]domain.Supplier, int, error) {
	return s.repo.List(ctx, search, offset, limit)
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, input PartyInput) (*domain.Supplier, error) {
	sup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sup.Name = strings.TrimSpace(input.Name)
	sup.Phone = input.Phone
	sup.Email = input.Email
	sup.Address = input.Address
	sup.GSTIN = strings.ToUpper(strings.TrimSpace(input.GSTIN))
	sup.StateCode = strings.TrimSpace(input.StateCode)
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, fmt.Errorf("supplierService.Update: %w", err)
	}
	return sup, nil
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// PaymentModeService manages the configured tender types.
type PaymentModeService interface {
	Create(ctx context.Context, name string) (*domain.PaymentMode, error)
	ListActive(ctx context.Context) ([]domain.PaymentMode, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type paymentModeService struct {
	repo port.PaymentModeRepository
}

// NewPaymentModeService creates a new PaymentModeService implementation.
func NewPaymentModeService(repo port.PaymentModeRepository) PaymentModeService {
	return &paymentModeService{repo: repo}
}

func (s *paymentModeService) Create(ctx context.Context, name string) (*domain.PaymentMode, error) {
	m := &domain.PaymentMode{Name: strings.TrimSpace(name), IsActive: true}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("paymentModeService.Create: %w", err)
	}
	return m, nil
}

func (s *paymentModeService) ListActive(ctx context.Context) ([]domain.PaymentMode, error) {
	return s.repo.ListActive(ctx)
}

func (s *paymentModeService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}
