package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// BookingFilter defines filtering options for booking queries
type BookingFilter struct {
	shared.Filter
	GuestID       *uuid.UUID     // Filter by guest
	RoomID        *uuid.UUID     // Filter by room
	Status        *BookingStatus // Filter by status
	PaymentStatus *PaymentStatus // Filter by payment status
	FromDate      *time.Time     // Filter by check-in range start
	ToDate        *time.Time     // Filter by check-in range end
}

// BookingRepository defines the interface for booking persistence
type BookingRepository interface {
	// FindByID finds a booking by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByNumber finds a booking by booking number
	FindByNumber(ctx context.Context, bookingNumber string) (*Booking, error)

	// FindAll finds bookings with filtering, newest first
	FindAll(ctx context.Context, filter BookingFilter) ([]Booking, error)

	// Count counts bookings matching the filter
	Count(ctx context.Context, filter BookingFilter) (int64, error)

	// CountByGuest counts bookings referencing a guest
	CountByGuest(ctx context.Context, guestID uuid.UUID) (int64, error)

	// CountConflicting counts confirmed or active bookings for the room
	// whose dates overlap [checkIn, checkOut), excluding excludeID
	CountConflicting(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, excludeID uuid.UUID) (int64, error)

	// Save creates or updates a booking
	Save(ctx context.Context, b *Booking) error

	// Delete removes a booking and its payments
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingPaymentRepository defines the interface for booking payment persistence
type BookingPaymentRepository interface {
	// FindByBooking finds all payments for a booking, newest first
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]BookingPayment, error)

	// Save creates or updates a booking payment
	Save(ctx context.Context, p *BookingPayment) error

	// SumCompletedByBooking sums completed payment amounts for a booking
	SumCompletedByBooking(ctx context.Context, bookingID uuid.UUID) (decimal.Decimal, error)
}
