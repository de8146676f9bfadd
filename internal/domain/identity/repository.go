package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// UserFilter defines filtering options for user queries
type UserFilter struct {
	shared.Filter
	Role   *Role       // Filter by role
	Status *UserStatus // Filter by status
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindAll finds users with filtering
	FindAll(ctx context.Context, filter UserFilter) ([]User, error)

	// Count counts users matching the filter
	Count(ctx context.Context, filter UserFilter) (int64, error)

	// Save creates or updates a user
	Save(ctx context.Context, u *User) error

	// Delete removes a user
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByUsername checks if a username is already taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
