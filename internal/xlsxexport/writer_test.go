package xlsxexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cityfashion/internal/domain"
)

func TestWriteSalesRegister(t *testing.T) {
	rows := []domain.SalesRegisterRow{
		{
			InvoiceNumber: "INV-000001",
			InvoiceDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			CustomerName:  "Asha Traders",
			Subtotal:      200,
			Discount:      23.6,
			Tax:           36,
			GrandTotal:    212.4,
			TotalPaid:     212,
			Due:           0.4,
		},
		{
			InvoiceNumber: "INV-000002",
			InvoiceDate:   time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			CustomerName:  "",
			Subtotal:      100,
			Discount:      0,
			Tax:           5,
			GrandTotal:    105,
			TotalPaid:     105,
			Due:           0,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSalesRegister(&buf, rows))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Invoice Number", got[0][0])
	assert.Equal(t, "Due", got[0][8])

	assert.Equal(t, "INV-000001", got[1][0])
	assert.Equal(t, "01-04-2025", got[1][1])
	assert.Equal(t, "Asha Traders", got[1][2])
	assert.Equal(t, "212.4", got[1][6])

	assert.Equal(t, "INV-000002", got[2][0])
}

func TestWriteSalesRegisterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSalesRegister(&buf, nil))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "sales_register", "sales_register"},
		{"spaces and symbols", "Sales Register (April)", "Sales_Register_April"},
		{"consecutive underscores", "a___b", "a_b"},
		{"trim edges", "__report__", "report"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	got := BuildFilename("sales register")
	assert.Contains(t, got, "sales_register_")
	assert.Contains(t, got, ".xlsx")
}
