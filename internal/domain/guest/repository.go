package guest

import (
	"context"

	"github.com/google/uuid"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// GuestFilter defines filtering options for guest queries
type GuestFilter struct {
	shared.Filter
	GuestType *GuestType // Filter by guest type
	VIPStatus *VIPStatus // Filter by loyalty tier
	IsActive  *bool      // Filter by active flag
}

// GuestRepository defines the interface for guest persistence
type GuestRepository interface {
	// FindByID finds a guest by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Guest, error)

	// FindByEmail finds a guest by email
	FindByEmail(ctx context.Context, email string) (*Guest, error)

	// FindAll finds guests with filtering, newest first
	FindAll(ctx context.Context, filter GuestFilter) ([]Guest, error)

	// Count counts guests matching the filter
	Count(ctx context.Context, filter GuestFilter) (int64, error)

	// Save creates or updates a guest
	Save(ctx context.Context, g *Guest) error

	// Delete removes a guest
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CountBookings counts bookings referencing the guest
	CountBookings(ctx context.Context, guestID uuid.UUID) (int64, error)

	// CountActiveBookings counts confirmed or active bookings referencing
	// the guest
	CountActiveBookings(ctx context.Context, guestID uuid.UUID) (int64, error)

	// CountOrders counts restaurant orders referencing the guest
	CountOrders(ctx context.Context, guestID uuid.UUID) (int64, error)
}
