package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// InvoiceFilter defines filtering options for invoice queries
type InvoiceFilter struct {
	shared.Filter
	InvoiceType *InvoiceType   // Filter by invoice type
	Status      *InvoiceStatus // Filter by status
	BookingID   *uuid.UUID     // Filter by source booking
	FromDate    *time.Time     // Filter by creation date range start
	ToDate      *time.Time     // Filter by creation date range end
	DueFrom     *time.Time     // Filter by due date range start
	DueTo       *time.Time     // Filter by due date range end
	Overdue     *bool          // Filter only overdue invoices
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByIDWithPayments finds an invoice with its payments loaded
	FindByIDWithPayments(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByInvoiceNumber finds an invoice by invoice number
	FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)

	// FindByBooking finds invoices attached to a booking
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]Invoice, error)

	// FindByConferenceBooking finds invoices attached to a conference booking
	FindByConferenceBooking(ctx context.Context, conferenceBookingID uuid.UUID) ([]Invoice, error)

	// FindAll finds invoices with filtering, newest first
	FindAll(ctx context.Context, filter InvoiceFilter) ([]Invoice, error)

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter InvoiceFilter) (int64, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, invoice *Invoice) error

	// SaveWithPayment persists the invoice (with version check) and the new
	// payment row in one transaction
	SaveWithPayment(ctx context.Context, invoice *Invoice, payment *Payment) error

	// Delete removes an invoice and its payments
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByInvoiceNumber checks if an invoice number is already taken
	ExistsByInvoiceNumber(ctx context.Context, invoiceNumber string) (bool, error)
}

// PaymentFilter defines filtering options for payment queries
type PaymentFilter struct {
	shared.Filter
	InvoiceID *uuid.UUID     // Filter by invoice
	Method    *PaymentMethod // Filter by payment method
	Status    *PaymentStatus // Filter by status
	FromDate  *time.Time     // Filter by payment date range start
	ToDate    *time.Time     // Filter by payment date range end
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByInvoice finds all payments for an invoice, newest first
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)

	// FindAll finds payments with filtering
	FindAll(ctx context.Context, filter PaymentFilter) ([]Payment, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error

	// SumCompletedByInvoice sums completed payment amounts for an invoice
	SumCompletedByInvoice(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
}

// TaxRateRepository defines the interface for tax rate persistence
type TaxRateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TaxRate, error)
	FindActive(ctx context.Context) ([]TaxRate, error)
	Save(ctx context.Context, rate *TaxRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DiscountRepository defines the interface for discount persistence
type DiscountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Discount, error)
	FindActive(ctx context.Context) ([]Discount, error)
	Save(ctx context.Context, discount *Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
}
