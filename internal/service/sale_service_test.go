package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cityfashion/internal/config"
	"cityfashion/internal/domain"
	"cityfashion/mocks"
)

func newSaleServiceForTest() (SaleService, *mocks.MockSaleRepo, *mocks.MockProductRepo, *mocks.MockCustomerRepo, *mocks.MockPaymentModeRepo) {
	saleRepo := new(mocks.MockSaleRepo)
	productRepo := new(mocks.MockProductRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	modeRepo := new(mocks.MockPaymentModeRepo)
	svc := NewSaleService(saleRepo, productRepo, customerRepo, modeRepo, config.StoreConfig{StateCode: "29"})
	return svc, saleRepo, productRepo, customerRepo, modeRepo
}

func TestSaleServiceCreate(t *testing.T) {
	svc, saleRepo, productRepo, _, modeRepo := newSaleServiceForTest()

	userID := uuid.New()
	productID := uuid.New()
	modeID := uuid.New()

	modeRepo.On("GetByID", mock.Anything, modeID).
		Return(&domain.PaymentMode{ID: modeID, Name: "Cash", IsActive: true}, nil)
	saleRepo.On("NextInvoiceNumber", mock.Anything).Return("INV-000042", nil)
	saleRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	productRepo.On("AdjustStock", mock.Anything, productID, -2.0).Return(nil)

	result, err := svc.Create(context.Background(), userID, CreateSaleInput{
		Items: []SaleLineInput{
			{ProductID: &productID, Description: "Cotton Shirt", Quantity: 2, UnitPrice: 100, TaxPercent: 18},
		},
		InvoiceDiscountPercent: 10,
		Payments:               []SalePaymentInput{{ModeID: modeID, Amount: 200}},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-000042", result.Sale.InvoiceNumber)
	assert.Equal(t, userID, result.Sale.CreatedBy)
	assert.Equal(t, domain.SaleStatusCompleted, result.Sale.Status)

	assert.Equal(t, 200.0, result.Totals.Subtotal)
	assert.Equal(t, 20.0, result.Totals.Discount)
	assert.Equal(t, 36.0, result.Totals.Tax)
	assert.Equal(t, 216.0, result.Totals.GrandTotal)
	assert.Equal(t, 216.0, result.Totals.RoundedTotal)

	assert.Equal(t, 200.0, result.Reconciliation.TotalPaid)
	assert.Equal(t, 16.0, result.Reconciliation.Due)

	require.Len(t, result.Items, 1)
	assert.False(t, result.Items[0].InterState)
	assert.Equal(t, 36.0, result.Items[0].TaxAmount)

	saleRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	modeRepo.AssertExpectations(t)
}

func TestSaleServiceCreateEmpty(t *testing.T) {
	svc, _, _, _, _ := newSaleServiceForTest()

	_, err := svc.Create(context.Background(), uuid.New(), CreateSaleInput{})
	assert.ErrorIs(t, err, domain.ErrEmptySale)
}

func TestSaleServiceCreateInvalidItem(t *testing.T) {
	svc, _, _, _, _ := newSaleServiceForTest()

	_, err := svc.Create(context.Background(), uuid.New(), CreateSaleInput{
		Items: []SaleLineInput{{Description: "Bad", Quantity: 0, UnitPrice: 100}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLineItems)
}

func TestSaleServiceCreateUnknownPaymentMode(t *testing.T) {
	svc, _, _, _, modeRepo := newSaleServiceForTest()

	modeID := uuid.New()
	modeRepo.On("GetByID", mock.Anything, modeID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), CreateSaleInput{
		Items:    []SaleLineInput{{Description: "Shirt", Quantity: 1, UnitPrice: 100}},
		Payments: []SalePaymentInput{{ModeID: modeID, Amount: 100}},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownPaymentMode)
}

func TestSaleServiceCreateInactivePaymentMode(t *testing.T) {
	svc, _, _, _, modeRepo := newSaleServiceForTest()

	modeID := uuid.New()
	modeRepo.On("GetByID", mock.Anything, modeID).
		Return(&domain.PaymentMode{ID: modeID, Name: "Old UPI", IsActive: false}, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateSaleInput{
		Items:    []SaleLineInput{{Description: "Shirt", Quantity: 1, UnitPrice: 100}},
		Payments: []SalePaymentInput{{ModeID: modeID, Amount: 100}},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownPaymentMode)
}

func TestSaleServiceCreateNumbersLinesInEntryOrder(t *testing.T) {
	svc, saleRepo, _, _, _ := newSaleServiceForTest()

	saleRepo.On("NextInvoiceNumber", mock.Anything).Return("INV-000045", nil)
	saleRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Create(context.Background(), uuid.New(), CreateSaleInput{
		Items: []SaleLineInput{
			{Description: "Shirt", Quantity: 1, UnitPrice: 400, TaxPercent: 5},
			{Description: "Trousers", Quantity: 1, UnitPrice: 800, TaxPercent: 12},
			{Description: "Belt", Quantity: 1, UnitPrice: 250, TaxPercent: 18},
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	for i, item := range result.Items {
		assert.Equal(t, i+1, item.LineNo)
	}
	assert.Equal(t, "Shirt", result.Items[0].Description)
	assert.Equal(t, "Belt", result.Items[2].Description)
}

func TestSaleServiceCreateInterState(t *testing.T) {
	svc, saleRepo, _, customerRepo, _ := newSaleServiceForTest()

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, Name: "Out of State Traders", StateCode: "27"}, nil)
	saleRepo.On("NextInvoiceNumber", mock.Anything).Return("INV-000043", nil)
	saleRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Create(context.Background(), uuid.New(), CreateSaleInput{
		CustomerID: &customerID,
		Items: []SaleLineInput{
			{Description: "Saree", Quantity: 1, UnitPrice: 1000, TaxPercent: 5},
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.True(t, result.Items[0].InterState)
}

func TestSaleServiceCreateSameStateCustomer(t *testing.T) {
	svc, saleRepo, _, customerRepo, _ := newSaleServiceForTest()

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, Name: "Local", StateCode: "29"}, nil)
	saleRepo.On("NextInvoiceNumber", mock.Anything).Return("INV-000044", nil)
	saleRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Create(context.Background(), uuid.New(), CreateSaleInput{
		CustomerID: &customerID,
		Items:      []SaleLineInput{{Description: "Kurta", Quantity: 1, UnitPrice: 500, TaxPercent: 12}},
	})
	require.NoError(t, err)
	assert.False(t, result.Items[0].InterState)
}
