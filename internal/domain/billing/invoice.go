package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared/valueobject"
)

// InvoiceType represents the service category an invoice bills for
type InvoiceType string

const (
	InvoiceTypeCustom       InvoiceType = "custom"
	InvoiceTypeGym          InvoiceType = "gym"
	InvoiceTypeSwimmingPool InvoiceType = "swimming_pool"
	InvoiceTypeBooking      InvoiceType = "booking"
	InvoiceTypeConference   InvoiceType = "conference"

	// InvoiceTypeBookingGuest is recognized by the settlement cascade for
	// historical records but no creation path produces it anymore.
	InvoiceTypeBookingGuest InvoiceType = "booking_guest"
)

// IsValid checks if the type is a creatable invoice type
func (t InvoiceType) IsValid() bool {
	switch t {
	case InvoiceTypeCustom, InvoiceTypeGym, InvoiceTypeSwimmingPool,
		InvoiceTypeBooking, InvoiceTypeConference:
		return true
	}
	return false
}

// String returns the string representation of InvoiceType
func (t InvoiceType) String() string {
	return string(t)
}

// DisplayName returns a human-readable label for the invoice type
func (t InvoiceType) DisplayName() string {
	switch t {
	case InvoiceTypeCustom:
		return "Custom Invoice"
	case InvoiceTypeGym:
		return "Gym"
	case InvoiceTypeSwimmingPool:
		return "Swimming Pool"
	case InvoiceTypeBooking:
		return "Booking Invoice"
	case InvoiceTypeConference:
		return "Conference Invoice"
	case InvoiceTypeBookingGuest:
		return "Booking Guest Invoice"
	}
	return string(t)
}

// IsOtherService reports whether revenue for this type is counted in the
// "Other Services" dashboard bucket. Booking and conference invoices are
// excluded because their revenue is already represented by the booking and
// conference ledgers.
func (t InvoiceType) IsOtherService() bool {
	switch t {
	case InvoiceTypeCustom, InvoiceTypeGym, InvoiceTypeSwimmingPool:
		return true
	}
	return false
}

// InvoiceStatus represents the lifecycle status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// IsOutstanding returns true while the invoice still awaits payment
func (s InvoiceStatus) IsOutstanding() bool {
	return s == InvoiceStatusDraft || s == InvoiceStatusSent
}

// Invoice is the aggregate root for a billable obligation. Customer fields
// are a snapshot taken at creation time, not a live reference, and at most
// one of BookingID/OrderID/ConferenceBookingID is set depending on the
// invoice type.
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber       string          `json:"invoice_number"`
	InvoiceType         InvoiceType     `json:"invoice_type"`
	BookingID           *uuid.UUID      `json:"booking_id,omitempty"`
	OrderID             *uuid.UUID      `json:"order_id,omitempty"`
	ConferenceBookingID *uuid.UUID      `json:"conference_booking_id,omitempty"`
	CustomerName        string          `json:"customer_name"`
	CustomerEmail       string          `json:"customer_email"`
	CustomerPhone       string          `json:"customer_phone"`
	CustomerAddress     string          `json:"customer_address"`
	InvoiceDate         time.Time       `json:"invoice_date"`
	DueDate             time.Time       `json:"due_date"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	TaxAmount           decimal.Decimal `json:"tax_amount"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
	Status              InvoiceStatus   `json:"status"`
	Notes               string          `json:"notes"`
	Payments            []Payment       `json:"payments,omitempty"`
}

// GenerateInvoiceNumber produces a unique invoice number, e.g. INV-9F2C41AB
func GenerateInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.New().String()[:8])
}

// NewInvoice creates a free-standing invoice. Derivation from bookings and
// conference bookings is handled by the application layer; this constructor
// validates the fields every invoice must carry.
func NewInvoice(
	invoiceNumber string,
	invoiceType InvoiceType,
	customerName string,
	customerEmail string,
	totalAmount valueobject.Money,
	dueDate time.Time,
	status InvoiceStatus,
	createdBy uuid.UUID,
) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if !invoiceType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INVOICE_TYPE", "Invalid invoice type selected")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if totalAmount.Amount().LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total amount must be positive")
	}
	if !status.IsValid() {
		status = InvoiceStatusDraft
	}

	now := time.Now()
	inv := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRootWithCreator(createdBy),
		InvoiceNumber:     invoiceNumber,
		InvoiceType:       invoiceType,
		CustomerName:      customerName,
		CustomerEmail:     customerEmail,
		InvoiceDate:       now,
		DueDate:           dueDate,
		Subtotal:          totalAmount.Amount(),
		TaxAmount:         decimal.Zero,
		DiscountAmount:    decimal.Zero,
		TotalAmount:       totalAmount.Amount(),
		PaidAmount:        decimal.Zero,
		Status:            status,
	}
	return inv, nil
}

// AttachBooking links the invoice to a room booking
func (inv *Invoice) AttachBooking(bookingID uuid.UUID) {
	inv.BookingID = &bookingID
}

// AttachOrder links the invoice to a restaurant order
func (inv *Invoice) AttachOrder(orderID uuid.UUID) {
	inv.OrderID = &orderID
}

// AttachConferenceBooking links the invoice to a conference booking
func (inv *Invoice) AttachConferenceBooking(conferenceBookingID uuid.UUID) {
	inv.ConferenceBookingID = &conferenceBookingID
}

// RemainingAmount returns total minus paid. It can only go negative through
// data corruption, never through ApplyPayment.
func (inv *Invoice) RemainingAmount() decimal.Decimal {
	return inv.TotalAmount.Sub(inv.PaidAmount)
}

// IsOverdue returns true if the invoice is past its due date and unpaid
func (inv *Invoice) IsOverdue() bool {
	return inv.Status != InvoiceStatusPaid && inv.DueDate.Before(time.Now())
}

// IsFullySettled returns true once the paid amount covers the total
func (inv *Invoice) IsFullySettled() bool {
	return inv.PaidAmount.GreaterThanOrEqual(inv.TotalAmount)
}

// ApplyPayment is the only mutation path for PaidAmount. It adds the amount
// and moves the status: paid when the total is covered, otherwise sent.
// Returns true when the payment completed the settlement.
func (inv *Invoice) ApplyPayment(amount valueobject.Money) (bool, error) {
	if amount.Amount().LessThanOrEqual(decimal.Zero) {
		return false, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	inv.PaidAmount = inv.PaidAmount.Add(amount.Amount())

	full := inv.IsFullySettled()
	if full {
		inv.Status = InvoiceStatusPaid
	} else {
		inv.Status = InvoiceStatusSent
	}

	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()

	return full, nil
}

// UpdateDetails replaces the editable invoice fields
func (inv *Invoice) UpdateDetails(
	customerName, customerEmail string,
	invoiceType InvoiceType,
	totalAmount valueobject.Money,
	dueDate time.Time,
	status InvoiceStatus,
	notes string,
) error {
	if customerName == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if !invoiceType.IsValid() {
		return shared.NewDomainError("INVALID_INVOICE_TYPE", "Invalid invoice type selected")
	}
	if totalAmount.Amount().LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Total amount must be positive")
	}
	if !status.IsValid() {
		status = InvoiceStatusDraft
	}

	inv.CustomerName = customerName
	inv.CustomerEmail = customerEmail
	inv.InvoiceType = invoiceType
	inv.TotalAmount = totalAmount.Amount()
	inv.Subtotal = totalAmount.Amount()
	inv.DueDate = dueDate
	inv.Status = status
	inv.Notes = notes
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()

	return nil
}

// GetTotalAmountMoney returns total amount as Money
func (inv *Invoice) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(inv.TotalAmount)
}

// GetPaidAmountMoney returns paid amount as Money
func (inv *Invoice) GetPaidAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(inv.PaidAmount)
}

// GetRemainingAmountMoney returns the remaining balance as Money
func (inv *Invoice) GetRemainingAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(inv.RemainingAmount())
}

// ServiceDescription builds the single line-item description used on the
// printed invoice.
func (inv *Invoice) ServiceDescription() string {
	return fmt.Sprintf("%s Service", inv.InvoiceType.DisplayName())
}
