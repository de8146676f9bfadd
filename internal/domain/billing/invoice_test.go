package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared/valueobject"
)

func mustMoney(t *testing.T, v float64) valueobject.Money {
	t.Helper()
	return valueobject.NewMoneyUSDFromFloat(v)
}

func TestNewInvoice(t *testing.T) {
	creator := uuid.New()
	due := time.Now().AddDate(0, 0, 30)

	tests := []struct {
		name          string
		invoiceNumber string
		invoiceType   InvoiceType
		customerName  string
		amount        float64
		status        InvoiceStatus
		wantErr       bool
		errMsg        string
	}{
		{
			name:          "valid custom invoice",
			invoiceNumber: "INV-AAAA0001",
			invoiceType:   InvoiceTypeCustom,
			customerName:  "Ahmad Rahimi",
			amount:        250.00,
			status:        InvoiceStatusSent,
		},
		{
			name:          "valid gym invoice",
			invoiceNumber: "INV-AAAA0002",
			invoiceType:   InvoiceTypeGym,
			customerName:  "Sara Karimi",
			amount:        45.50,
			status:        InvoiceStatusDraft,
		},
		{
			name:          "empty invoice number",
			invoiceNumber: "",
			invoiceType:   InvoiceTypeCustom,
			customerName:  "Ahmad Rahimi",
			amount:        250.00,
			status:        InvoiceStatusSent,
			wantErr:       true,
			errMsg:        "Invoice number cannot be empty",
		},
		{
			name:          "invalid invoice type",
			invoiceNumber: "INV-AAAA0003",
			invoiceType:   InvoiceType("spa"),
			customerName:  "Ahmad Rahimi",
			amount:        250.00,
			status:        InvoiceStatusSent,
			wantErr:       true,
			errMsg:        "Invalid invoice type",
		},
		{
			name:          "legacy booking_guest type is not creatable",
			invoiceNumber: "INV-AAAA0004",
			invoiceType:   InvoiceTypeBookingGuest,
			customerName:  "Ahmad Rahimi",
			amount:        250.00,
			status:        InvoiceStatusSent,
			wantErr:       true,
			errMsg:        "Invalid invoice type",
		},
		{
			name:          "empty customer name",
			invoiceNumber: "INV-AAAA0005",
			invoiceType:   InvoiceTypeCustom,
			customerName:  "",
			amount:        250.00,
			status:        InvoiceStatusSent,
			wantErr:       true,
			errMsg:        "Customer name cannot be empty",
		},
		{
			name:          "zero amount",
			invoiceNumber: "INV-AAAA0006",
			invoiceType:   InvoiceTypeCustom,
			customerName:  "Ahmad Rahimi",
			amount:        0,
			status:        InvoiceStatusSent,
			wantErr:       true,
			errMsg:        "Total amount must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := NewInvoice(
				tt.invoiceNumber, tt.invoiceType, tt.customerName,
				"guest@example.com", mustMoney(t, tt.amount), due, tt.status, creator,
			)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, inv)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, inv)
			assert.Equal(t, tt.invoiceNumber, inv.InvoiceNumber)
			assert.Equal(t, tt.invoiceType, inv.InvoiceType)
			assert.Equal(t, tt.status, inv.Status)
			assert.True(t, inv.TotalAmount.Equal(decimal.NewFromFloat(tt.amount)))
			assert.True(t, inv.Subtotal.Equal(inv.TotalAmount))
			assert.True(t, inv.PaidAmount.IsZero())
			assert.Equal(t, 1, inv.GetVersion())
			require.NotNil(t, inv.CreatedBy)
			assert.Equal(t, creator, *inv.CreatedBy)
		})
	}
}

func TestNewInvoice_InvalidStatusFallsBackToDraft(t *testing.T) {
	inv, err := NewInvoice(
		"INV-AAAA0007", InvoiceTypeSwimmingPool, "Sara Karimi",
		"", mustMoney(t, 30), time.Now().AddDate(0, 0, 7),
		InvoiceStatus("bogus"), uuid.New(),
	)
	require.NoError(t, err)
	assert.Equal(t, InvoiceStatusDraft, inv.Status)
}

func TestInvoice_ApplyPayment(t *testing.T) {
	newInvoice := func(t *testing.T, total float64) *Invoice {
		t.Helper()
		inv, err := NewInvoice(
			"INV-BBBB0001", InvoiceTypeBooking, "Ahmad Rahimi",
			"guest@example.com", mustMoney(t, total),
			time.Now().AddDate(0, 0, 14), InvoiceStatusSent, uuid.New(),
		)
		require.NoError(t, err)
		return inv
	}

	t.Run("partial payment keeps invoice sent", func(t *testing.T) {
		inv := newInvoice(t, 500)

		full, err := inv.ApplyPayment(mustMoney(t, 200))
		require.NoError(t, err)

		assert.False(t, full)
		assert.Equal(t, InvoiceStatusSent, inv.Status)
		assert.True(t, inv.PaidAmount.Equal(decimal.NewFromInt(200)))
		assert.True(t, inv.RemainingAmount().Equal(decimal.NewFromInt(300)))
		assert.Equal(t, 2, inv.GetVersion())
	})

	t.Run("exact payment settles invoice", func(t *testing.T) {
		inv := newInvoice(t, 500)

		full, err := inv.ApplyPayment(mustMoney(t, 500))
		require.NoError(t, err)

		assert.True(t, full)
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
		assert.True(t, inv.RemainingAmount().IsZero())
	})

	t.Run("overpayment settles and total paid exceeds total", func(t *testing.T) {
		inv := newInvoice(t, 500)

		full, err := inv.ApplyPayment(mustMoney(t, 600))
		require.NoError(t, err)

		assert.True(t, full)
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
		assert.True(t, inv.PaidAmount.Equal(decimal.NewFromInt(600)))
		assert.True(t, inv.RemainingAmount().Equal(decimal.NewFromInt(-100)))
	})

	t.Run("sequence of partial payments accumulates", func(t *testing.T) {
		inv := newInvoice(t, 500)

		full, err := inv.ApplyPayment(mustMoney(t, 150))
		require.NoError(t, err)
		assert.False(t, full)

		full, err = inv.ApplyPayment(mustMoney(t, 150))
		require.NoError(t, err)
		assert.False(t, full)
		assert.Equal(t, InvoiceStatusSent, inv.Status)

		full, err = inv.ApplyPayment(mustMoney(t, 200))
		require.NoError(t, err)
		assert.True(t, full)
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
		assert.Equal(t, 4, inv.GetVersion())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		inv := newInvoice(t, 500)

		_, err := inv.ApplyPayment(valueobject.ZeroUSD())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Payment amount must be positive")
		assert.True(t, inv.PaidAmount.IsZero())
		assert.Equal(t, 1, inv.GetVersion())
	})
}

func TestInvoice_IsOverdue(t *testing.T) {
	inv, err := NewInvoice(
		"INV-CCCC0001", InvoiceTypeConference, "Omid Noori",
		"", mustMoney(t, 1200), time.Now().Add(-24*time.Hour),
		InvoiceStatusSent, uuid.New(),
	)
	require.NoError(t, err)

	assert.True(t, inv.IsOverdue())

	_, err = inv.ApplyPayment(mustMoney(t, 1200))
	require.NoError(t, err)
	assert.False(t, inv.IsOverdue(), "paid invoices are never overdue")
}

func TestInvoice_UpdateDetails(t *testing.T) {
	inv, err := NewInvoice(
		"INV-DDDD0001", InvoiceTypeCustom, "Ahmad Rahimi",
		"guest@example.com", mustMoney(t, 100),
		time.Now().AddDate(0, 0, 7), InvoiceStatusDraft, uuid.New(),
	)
	require.NoError(t, err)

	newDue := time.Now().AddDate(0, 0, 21)
	err = inv.UpdateDetails("Sara Karimi", "sara@example.com", InvoiceTypeGym,
		mustMoney(t, 75), newDue, InvoiceStatusSent, "membership renewal")
	require.NoError(t, err)

	assert.Equal(t, "Sara Karimi", inv.CustomerName)
	assert.Equal(t, InvoiceTypeGym, inv.InvoiceType)
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(75)))
	assert.True(t, inv.Subtotal.Equal(inv.TotalAmount))
	assert.Equal(t, InvoiceStatusSent, inv.Status)
	assert.Equal(t, "membership renewal", inv.Notes)
	assert.Equal(t, 2, inv.GetVersion())

	err = inv.UpdateDetails("", "", InvoiceTypeGym, mustMoney(t, 75), newDue, InvoiceStatusSent, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Customer name cannot be empty")
}

func TestInvoiceType_IsOtherService(t *testing.T) {
	assert.True(t, InvoiceTypeCustom.IsOtherService())
	assert.True(t, InvoiceTypeGym.IsOtherService())
	assert.True(t, InvoiceTypeSwimmingPool.IsOtherService())
	assert.False(t, InvoiceTypeBooking.IsOtherService())
	assert.False(t, InvoiceTypeConference.IsOtherService())
	assert.False(t, InvoiceTypeBookingGuest.IsOtherService())
}

func TestGenerateInvoiceNumber(t *testing.T) {
	n := GenerateInvoiceNumber()
	assert.Len(t, n, 12)
	assert.Equal(t, "INV-", n[:4])
	assert.NotEqual(t, n, GenerateInvoiceNumber())
}
