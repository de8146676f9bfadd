package conference

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// RoomStatus represents the operational status of a conference room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusCleaning    RoomStatus = "cleaning"
	RoomStatusOutOfOrder  RoomStatus = "out_of_order"
)

// IsValid checks if the status is a valid RoomStatus
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance,
		RoomStatusCleaning, RoomStatusOutOfOrder:
		return true
	}
	return false
}

// ConferenceRoom is a bookable event space with hourly and daily rates
type ConferenceRoom struct {
	shared.BaseEntity
	Name        string          `json:"name"`
	Capacity    int             `json:"capacity"`
	Floor       int             `json:"floor"`
	Status      RoomStatus      `json:"status"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	Description string          `json:"description"`
	Amenities   string          `json:"amenities"`
	IsActive    bool            `json:"is_active"`
}

// NewConferenceRoom creates an available conference room
func NewConferenceRoom(name string, capacity, floor int, hourlyRate, dailyRate decimal.Decimal) (*ConferenceRoom, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ROOM_NAME", "Conference room name cannot be empty")
	}
	if capacity <= 0 {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity must be positive")
	}
	if hourlyRate.LessThanOrEqual(decimal.Zero) || dailyRate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_RATE", "Room rates must be positive")
	}

	return &ConferenceRoom{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Capacity:   capacity,
		Floor:      floor,
		Status:     RoomStatusAvailable,
		HourlyRate: hourlyRate,
		DailyRate:  dailyRate,
		IsActive:   true,
	}, nil
}

// BookingStatus represents the lifecycle status of a conference booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid checks if the status is a valid BookingStatus
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus represents how much of a conference booking has been paid
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

// GenerateBookingNumber produces a unique conference booking number,
// e.g. CNF-9F2C41AB
func GenerateBookingNumber() string {
	return "CNF-" + strings.ToUpper(uuid.New().String()[:8])
}

// ConferenceBooking is the aggregate root for an event-space reservation.
// Client fields are a snapshot, not a guest reference.
type ConferenceBooking struct {
	shared.BaseAggregateRoot
	BookingNumber string    `json:"booking_number"`
	RoomID        uuid.UUID `json:"room_id"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	EventTitle       string    `json:"event_title"`
	EventDescription string    `json:"event_description"`
	StartDatetime    time.Time `json:"start_datetime"`
	EndDatetime      time.Time `json:"end_datetime"`
	AttendeesCount   int       `json:"attendees_count"`

	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	SpecialRequirements string `json:"special_requirements"`
}

// NewConferenceBooking creates a pending conference booking
func NewConferenceBooking(
	roomID uuid.UUID,
	clientName, clientEmail, eventTitle string,
	start, end time.Time,
	attendees int,
	totalAmount decimal.Decimal,
	createdBy uuid.UUID,
) (*ConferenceBooking, error) {
	if roomID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ROOM_ID", "Conference room cannot be empty")
	}
	if clientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}
	if eventTitle == "" {
		return nil, shared.NewDomainError("INVALID_EVENT_TITLE", "Event title cannot be empty")
	}
	if !end.After(start) {
		return nil, shared.NewDomainError("INVALID_EVENT_WINDOW", "Event end must be after event start")
	}
	if attendees < 1 {
		return nil, shared.NewDomainError("INVALID_ATTENDEES", "Attendees count must be at least 1")
	}
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total amount must be positive")
	}

	return &ConferenceBooking{
		BaseAggregateRoot: shared.NewBaseAggregateRootWithCreator(createdBy),
		BookingNumber:     GenerateBookingNumber(),
		RoomID:            roomID,
		ClientName:        clientName,
		ClientEmail:       clientEmail,
		EventTitle:        eventTitle,
		StartDatetime:     start,
		EndDatetime:       end,
		AttendeesCount:    attendees,
		TotalAmount:       totalAmount,
		PaidAmount:        decimal.Zero,
		Status:            BookingStatusPending,
		PaymentStatus:     PaymentStatusPending,
	}, nil
}

// DurationHours returns the event length in hours
func (cb *ConferenceBooking) DurationHours() float64 {
	return cb.EndDatetime.Sub(cb.StartDatetime).Hours()
}

// RemainingAmount returns total minus paid
func (cb *ConferenceBooking) RemainingAmount() decimal.Decimal {
	return cb.TotalAmount.Sub(cb.PaidAmount)
}

// IsFullyPaid reports whether nothing remains due
func (cb *ConferenceBooking) IsFullyPaid() bool {
	return cb.PaidAmount.GreaterThanOrEqual(cb.TotalAmount)
}

// RecordPayment adds an amount to PaidAmount and recomputes payment status
func (cb *ConferenceBooking) RecordPayment(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	cb.PaidAmount = cb.PaidAmount.Add(amount)
	if cb.IsFullyPaid() {
		cb.PaymentStatus = PaymentStatusPaid
	} else {
		cb.PaymentStatus = PaymentStatusPartial
	}
	cb.UpdatedAt = time.Now()
	cb.IncrementVersion()
	return nil
}

// Confirm moves a pending booking to confirmed
func (cb *ConferenceBooking) Confirm() error {
	if cb.Status != BookingStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending bookings can be confirmed")
	}
	cb.Status = BookingStatusConfirmed
	cb.UpdatedAt = time.Now()
	cb.IncrementVersion()
	return nil
}

// Complete marks the event as held
func (cb *ConferenceBooking) Complete() error {
	if cb.Status != BookingStatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", "Only confirmed bookings can be completed")
	}
	cb.Status = BookingStatusCompleted
	cb.UpdatedAt = time.Now()
	cb.IncrementVersion()
	return nil
}

// Cancel cancels a booking that has not been completed
func (cb *ConferenceBooking) Cancel() error {
	if cb.Status == BookingStatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Completed bookings cannot be cancelled")
	}
	cb.Status = BookingStatusCancelled
	cb.UpdatedAt = time.Now()
	cb.IncrementVersion()
	return nil
}
