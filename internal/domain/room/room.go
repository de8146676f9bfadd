package room

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// RoomStatus represents the operational status of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusCleaning    RoomStatus = "cleaning"
	RoomStatusReserved    RoomStatus = "reserved"
	RoomStatusOutOfOrder  RoomStatus = "out_of_order"
)

// IsValid checks if the status is a valid RoomStatus
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance,
		RoomStatusCleaning, RoomStatusReserved, RoomStatusOutOfOrder:
		return true
	}
	return false
}

// String returns the string representation of RoomStatus
func (s RoomStatus) String() string {
	return string(s)
}

// RoomType groups rooms sharing capacity, rate and amenities
type RoomType struct {
	shared.BaseEntity
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Capacity    int             `json:"capacity"`
	Amenities   string          `json:"amenities"`
	IsActive    bool            `json:"is_active"`
}

// NewRoomType creates an active room type
func NewRoomType(name string, basePrice decimal.Decimal, capacity int) (*RoomType, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ROOM_TYPE_NAME", "Room type name cannot be empty")
	}
	if basePrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_BASE_PRICE", "Base price must be positive")
	}
	if capacity <= 0 {
		capacity = 2
	}

	return &RoomType{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		BasePrice:  basePrice,
		Capacity:   capacity,
		IsActive:   true,
	}, nil
}

// AmenitiesList splits the comma-separated amenities field
func (rt *RoomType) AmenitiesList() []string {
	if rt.Amenities == "" {
		return nil
	}
	parts := strings.Split(rt.Amenities, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Room is a physical hotel room. CurrentPrice overrides the type's base
// price when set.
type Room struct {
	shared.BaseAggregateRoot
	RoomNumber   string           `json:"room_number"`
	RoomTypeID   uuid.UUID        `json:"room_type_id"`
	RoomType     *RoomType        `json:"room_type,omitempty"`
	Floor        int              `json:"floor"`
	Status       RoomStatus       `json:"status"`
	CurrentPrice *decimal.Decimal `json:"current_price,omitempty"`
	Notes        string           `json:"notes"`
	IsActive     bool             `json:"is_active"`
}

// NewRoom creates an available room
func NewRoom(roomNumber string, roomTypeID uuid.UUID, floor int) (*Room, error) {
	if roomNumber == "" {
		return nil, shared.NewDomainError("INVALID_ROOM_NUMBER", "Room number cannot be empty")
	}
	if roomTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ROOM_TYPE", "Room type cannot be empty")
	}
	if floor < 1 || floor > 10 {
		return nil, shared.NewDomainError("INVALID_FLOOR", "Floor must be between 1 and 10")
	}

	return &Room{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RoomNumber:        roomNumber,
		RoomTypeID:        roomTypeID,
		Floor:             floor,
		Status:            RoomStatusAvailable,
		IsActive:          true,
	}, nil
}

// EffectivePrice returns the room's current price, falling back to the
// type's base price.
func (r *Room) EffectivePrice() decimal.Decimal {
	if r.CurrentPrice != nil {
		return *r.CurrentPrice
	}
	if r.RoomType != nil {
		return r.RoomType.BasePrice
	}
	return decimal.Zero
}

// IsAvailable reports whether the room can take a new booking
func (r *Room) IsAvailable() bool {
	return r.Status == RoomStatusAvailable && r.IsActive
}

// UpdateStatus moves the room to a new operational status
func (r *Room) UpdateStatus(status RoomStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_ROOM_STATUS", "Invalid room status selected")
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// MarkOccupied flags the room as occupied by a checked-in booking
func (r *Room) MarkOccupied() {
	r.Status = RoomStatusOccupied
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// MarkCleaning flags the room for housekeeping after check-out
func (r *Room) MarkCleaning() {
	r.Status = RoomStatusCleaning
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}
