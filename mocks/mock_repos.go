// Package mocks provides testify mocks for the port interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cityfashion/internal/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error) {
	args := m.Called(ctx, search, offset, limit)
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}

func (m *MockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepo) AdjustStock(ctx context.Context, id uuid.UUID, delta float64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error) {
	args := m.Called(ctx, search, offset, limit)
	return args.Get(0).([]domain.Customer), args.Int(1), args.Error(2)
}

func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSupplierRepo struct {
	mock.Mock
}

func (m *MockSupplierRepo) Create(ctx context.Context, s *domain.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Supplier, int, error) {
	args := m.Called(ctx, search, offset, limit)
	return args.Get(0).([]domain.Supplier), args.Int(1), args.Error(2)
}

func (m *MockSupplierRepo) Update(ctx context.Context, s *domain.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPaymentModeRepo struct {
	mock.Mock
}

func (m *MockPaymentModeRepo) Create(ctx context.Context, pm *domain.PaymentMode) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockPaymentModeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMode), args.Error(1)
}

func (m *MockPaymentModeRepo) ListActive(ctx context.Context) ([]domain.PaymentMode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PaymentMode), args.Error(1)
}

func (m *MockPaymentModeRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) Create(ctx context.Context, sale *domain.Sale, items []domain.SaleItem, payments []domain.SalePayment) error {
	args := m.Called(ctx, sale, items, payments)
	return args.Error(0)
}

func (m *MockSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepo) GetItems(ctx context.Context, saleID uuid.UUID) ([]domain.SaleItem, error) {
	args := m.Called(ctx, saleID)
	return args.Get(0).([]domain.SaleItem), args.Error(1)
}

func (m *MockSaleRepo) GetPayments(ctx context.Context, saleID uuid.UUID) ([]domain.SalePayment, error) {
	args := m.Called(ctx, saleID)
	return args.Get(0).([]domain.SalePayment), args.Error(1)
}

func (m *MockSaleRepo) List(ctx context.Context, filters *domain.ReportFilters) ([]domain.Sale, int, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]domain.Sale), args.Int(1), args.Error(2)
}

func (m *MockSaleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SaleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockSaleRepo) NextInvoiceNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockPurchaseRepo struct {
	mock.Mock
}

func (m *MockPurchaseRepo) Create(ctx context.Context, purchase *domain.Purchase, items []domain.PurchaseItem) error {
	args := m.Called(ctx, purchase, items)
	return args.Error(0)
}

func (m *MockPurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepo) GetItems(ctx context.Context, purchaseID uuid.UUID) ([]domain.PurchaseItem, error) {
	args := m.Called(ctx, purchaseID)
	return args.Get(0).([]domain.PurchaseItem), args.Error(1)
}

func (m *MockPurchaseRepo) List(ctx context.Context, filters *domain.ReportFilters) ([]domain.Purchase, int, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]domain.Purchase), args.Int(1), args.Error(2)
}

type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) SalesRegister(ctx context.Context, filters *domain.ReportFilters) ([]domain.SalesRegisterRow, int, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]domain.SalesRegisterRow), args.Int(1), args.Error(2)
}
