package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// BookingStatus represents the lifecycle status of a room booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// IsValid checks if the status is a valid BookingStatus
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusActive,
		BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

// String returns the string representation of BookingStatus
func (s BookingStatus) String() string {
	return string(s)
}

// BlocksRoom reports whether a booking in this status holds the room for
// its date range
func (s BookingStatus) BlocksRoom() bool {
	return s == BookingStatusConfirmed || s == BookingStatusActive
}

// PaymentStatus represents how much of a booking has been paid
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// BookingSource records where the booking came from
type BookingSource string

const (
	BookingSourceDirect      BookingSource = "direct"
	BookingSourceWebsite     BookingSource = "website"
	BookingSourcePhone       BookingSource = "phone"
	BookingSourceTravelAgent BookingSource = "travel_agent"
	BookingSourceOnline      BookingSource = "online_booking"
	BookingSourceWalkIn      BookingSource = "walk_in"
)

// IsValid checks if the source is a valid BookingSource
func (s BookingSource) IsValid() bool {
	switch s {
	case BookingSourceDirect, BookingSourceWebsite, BookingSourcePhone,
		BookingSourceTravelAgent, BookingSourceOnline, BookingSourceWalkIn:
		return true
	}
	return false
}

// String returns the string representation of BookingSource
func (s BookingSource) String() string {
	return string(s)
}

// GenerateBookingNumber produces a unique booking number, e.g. BK9F2C41AB
func GenerateBookingNumber() string {
	return "BK" + strings.ToUpper(uuid.New().String()[:8])
}

// Booking is the aggregate root for a room reservation
type Booking struct {
	shared.BaseAggregateRoot
	BookingNumber string    `json:"booking_number"`
	GuestID       uuid.UUID `json:"guest_id"`
	RoomID        uuid.UUID `json:"room_id"`

	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`

	NumberOfGuests int    `json:"number_of_guests"`
	GuestNames     string `json:"guest_names"`

	RoomRate      decimal.Decimal `json:"room_rate"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	BalanceAmount decimal.Decimal `json:"balance_amount"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	SpecialRequests string        `json:"special_requests"`
	Source          BookingSource `json:"source"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	Payments []BookingPayment `json:"payments,omitempty"`
}

// NewBooking creates a pending booking and derives the total from the rate
// and duration
func NewBooking(guestID, roomID uuid.UUID, checkIn, checkOut time.Time, roomRate decimal.Decimal, numberOfGuests int) (*Booking, error) {
	if guestID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_GUEST_ID", "Guest ID cannot be empty")
	}
	if roomID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ROOM_ID", "Room ID cannot be empty")
	}
	if !checkOut.After(checkIn) {
		return nil, shared.NewDomainError("INVALID_DATE_RANGE", "Check-out date must be after check-in date")
	}
	if roomRate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_ROOM_RATE", "Room rate must be positive")
	}
	if numberOfGuests < 1 {
		numberOfGuests = 1
	}

	b := &Booking{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BookingNumber:     GenerateBookingNumber(),
		GuestID:           guestID,
		RoomID:            roomID,
		CheckInDate:       checkIn,
		CheckOutDate:      checkOut,
		NumberOfGuests:    numberOfGuests,
		RoomRate:          roomRate,
		DepositAmount:     decimal.Zero,
		Status:            BookingStatusPending,
		PaymentStatus:     PaymentStatusPending,
		Source:            BookingSourceDirect,
	}
	b.RecalculateAmounts()
	return b, nil
}

// DurationNights returns the stay length in nights
func (b *Booking) DurationNights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// RecalculateAmounts derives total and balance from rate, duration and
// deposit
func (b *Booking) RecalculateAmounts() {
	b.TotalAmount = b.RoomRate.Mul(decimal.NewFromInt(int64(b.DurationNights())))
	b.BalanceAmount = b.TotalAmount.Sub(b.DepositAmount)
}

// Confirm moves a pending booking to confirmed
func (b *Booking) Confirm() error {
	if b.Status != BookingStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending bookings can be confirmed")
	}
	now := time.Now()
	b.Status = BookingStatusConfirmed
	b.ConfirmedAt = &now
	b.UpdatedAt = now
	b.IncrementVersion()
	return nil
}

// CheckIn activates a confirmed booking
func (b *Booking) CheckIn() error {
	if b.Status != BookingStatusConfirmed && b.Status != BookingStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending or confirmed bookings can be checked in")
	}
	b.Status = BookingStatusActive
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// CheckOut completes an active booking
func (b *Booking) CheckOut() error {
	if b.Status != BookingStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active bookings can be checked out")
	}
	b.Status = BookingStatusCompleted
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// Cancel cancels the booking unless the guest already checked in
func (b *Booking) Cancel() error {
	if b.Status == BookingStatusActive || b.Status == BookingStatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Active or completed bookings cannot be cancelled")
	}
	now := time.Now()
	b.Status = BookingStatusCancelled
	b.CancelledAt = &now
	b.UpdatedAt = now
	b.IncrementVersion()
	return nil
}

// OverlapsWith reports whether the booking's date range overlaps [checkIn,
// checkOut)
func (b *Booking) OverlapsWith(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}

// RecomputePaymentStatus sets the payment status from the sum of completed
// payments: paid when the total is covered, partial when anything was
// received, pending otherwise.
func (b *Booking) RecomputePaymentStatus(totalPaid decimal.Decimal) {
	switch {
	case totalPaid.GreaterThanOrEqual(b.TotalAmount) && b.TotalAmount.GreaterThan(decimal.Zero):
		b.PaymentStatus = PaymentStatusPaid
	case totalPaid.GreaterThan(decimal.Zero):
		b.PaymentStatus = PaymentStatusPartial
	default:
		b.PaymentStatus = PaymentStatusPending
	}
	b.UpdatedAt = time.Now()
}

// RemainingBalance returns total minus deposit
func (b *Booking) RemainingBalance() decimal.Decimal {
	return b.TotalAmount.Sub(b.DepositAmount)
}
