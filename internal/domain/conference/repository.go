package conference

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// BookingFilter defines filtering options for conference booking queries
type BookingFilter struct {
	shared.Filter
	RoomID        *uuid.UUID     // Filter by conference room
	Status        *BookingStatus // Filter by status
	PaymentStatus *PaymentStatus // Filter by payment status
	FromDate      *time.Time     // Filter by event start range
	ToDate        *time.Time     // Filter by event start range end
}

// ConferenceRoomRepository defines the interface for conference room persistence
type ConferenceRoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ConferenceRoom, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ConferenceRoom, error)
	Save(ctx context.Context, r *ConferenceRoom) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConferenceBookingRepository defines the interface for conference booking persistence
type ConferenceBookingRepository interface {
	// FindByID finds a conference booking by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ConferenceBooking, error)

	// FindByNumber finds a conference booking by booking number
	FindByNumber(ctx context.Context, bookingNumber string) (*ConferenceBooking, error)

	// FindAll finds conference bookings with filtering, newest first
	FindAll(ctx context.Context, filter BookingFilter) ([]ConferenceBooking, error)

	// Count counts conference bookings matching the filter
	Count(ctx context.Context, filter BookingFilter) (int64, error)

	// CountConflicting counts confirmed bookings for the room whose event
	// window overlaps [start, end), excluding excludeID
	CountConflicting(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error)

	// Save creates or updates a conference booking
	Save(ctx context.Context, cb *ConferenceBooking) error

	// Delete removes a conference booking
	Delete(ctx context.Context, id uuid.UUID) error
}
