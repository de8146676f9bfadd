package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// BookingPaymentStatus represents the processing state of a booking payment
type BookingPaymentStatus string

const (
	BookingPaymentStatusPending   BookingPaymentStatus = "pending"
	BookingPaymentStatusCompleted BookingPaymentStatus = "completed"
	BookingPaymentStatusFailed    BookingPaymentStatus = "failed"
	BookingPaymentStatusRefunded  BookingPaymentStatus = "refunded"
)

// IsValid checks if the status is a valid BookingPaymentStatus
func (s BookingPaymentStatus) IsValid() bool {
	switch s {
	case BookingPaymentStatusPending, BookingPaymentStatusCompleted,
		BookingPaymentStatusFailed, BookingPaymentStatusRefunded:
		return true
	}
	return false
}

// BookingPayment is a ledger row recording money received against a
// booking. Invoice settlement mirrors completed payments into this ledger
// so the booking's payment status stays in step with its invoices.
type BookingPayment struct {
	shared.BaseEntity
	BookingID       uuid.UUID            `json:"booking_id"`
	Amount          decimal.Decimal      `json:"amount"`
	PaymentMethod   string               `json:"payment_method"`
	PaymentDate     time.Time            `json:"payment_date"`
	ReferenceNumber string               `json:"reference_number"`
	Status          BookingPaymentStatus `json:"status"`
	ProcessedBy     *uuid.UUID           `json:"processed_by,omitempty"`
	Notes           string               `json:"notes"`
}

// NewBookingPayment creates a completed booking payment
func NewBookingPayment(bookingID uuid.UUID, amount decimal.Decimal, method string, processedBy uuid.UUID) (*BookingPayment, error) {
	if bookingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BOOKING_ID", "Booking ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	return &BookingPayment{
		BaseEntity:    shared.NewBaseEntity(),
		BookingID:     bookingID,
		Amount:        amount,
		PaymentMethod: method,
		PaymentDate:   time.Now(),
		Status:        BookingPaymentStatusCompleted,
		ProcessedBy:   &processedBy,
	}, nil
}

// IsCompleted reports whether the payment counts toward the booking total
func (p *BookingPayment) IsCompleted() bool {
	return p.Status == BookingPaymentStatusCompleted
}
