package restaurant

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// OrderFilter defines filtering options for order queries
type OrderFilter struct {
	shared.Filter
	GuestID       *uuid.UUID          // Filter by guest
	RoomID        *uuid.UUID          // Filter by room
	Status        *OrderStatus        // Filter by status
	PaymentStatus *OrderPaymentStatus // Filter by payment status
	FromDate      *time.Time          // Filter by creation range start
	ToDate        *time.Time          // Filter by creation range end
}

// OrderRepository defines the interface for restaurant order persistence
type OrderRepository interface {
	// FindByID finds an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByNumber finds an order by order number
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindAll finds orders with filtering, newest first
	FindAll(ctx context.Context, filter OrderFilter) ([]Order, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// CountByGuest counts orders referencing a guest
	CountByGuest(ctx context.Context, guestID uuid.UUID) (int64, error)

	// Save creates or updates an order with its items
	Save(ctx context.Context, o *Order) error

	// Delete removes an order and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByGuest removes all orders referencing a guest
	DeleteByGuest(ctx context.Context, guestID uuid.UUID) error
}

// MenuCategoryRepository defines the interface for menu category persistence
type MenuCategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MenuCategory, error)
	FindAll(ctx context.Context) ([]MenuCategory, error)
	Save(ctx context.Context, c *MenuCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MenuItemRepository defines the interface for menu item persistence
type MenuItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItem, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]MenuItem, error)
	FindAvailable(ctx context.Context) ([]MenuItem, error)
	Save(ctx context.Context, m *MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
