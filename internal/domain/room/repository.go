package room

import (
	"context"

	"github.com/google/uuid"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// RoomFilter defines filtering options for room queries
type RoomFilter struct {
	shared.Filter
	RoomTypeID *uuid.UUID  // Filter by room type
	Status     *RoomStatus // Filter by status
	Floor      *int        // Filter by floor
	IsActive   *bool       // Filter by active flag
}

// RoomRepository defines the interface for room persistence
type RoomRepository interface {
	// FindByID finds a room by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Room, error)

	// FindByNumber finds a room by room number
	FindByNumber(ctx context.Context, roomNumber string) (*Room, error)

	// FindAll finds rooms with filtering, ordered by room number
	FindAll(ctx context.Context, filter RoomFilter) ([]Room, error)

	// Count counts rooms matching the filter
	Count(ctx context.Context, filter RoomFilter) (int64, error)

	// Save creates or updates a room
	Save(ctx context.Context, r *Room) error

	// Delete removes a room
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomTypeRepository defines the interface for room type persistence
type RoomTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomType, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]RoomType, error)
	Save(ctx context.Context, rt *RoomType) error
	Delete(ctx context.Context, id uuid.UUID) error
}
