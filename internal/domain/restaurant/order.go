package restaurant

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// OrderStatus represents the kitchen pipeline status of an order
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusBilled    OrderStatus = "billed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusPreparing, OrderStatusReady,
		OrderStatusServed, OrderStatusBilled, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// OrderPaymentStatus represents how the order has been paid
type OrderPaymentStatus string

const (
	OrderPaymentPending  OrderPaymentStatus = "pending"
	OrderPaymentPaid     OrderPaymentStatus = "paid"
	OrderPaymentRefunded OrderPaymentStatus = "refunded"
)

// IsValid checks if the status is a valid OrderPaymentStatus
func (s OrderPaymentStatus) IsValid() bool {
	switch s {
	case OrderPaymentPending, OrderPaymentPaid, OrderPaymentRefunded:
		return true
	}
	return false
}

// GenerateOrderNumber produces a unique order number, e.g. ORD-9F2C41AB
func GenerateOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// OrderItem is one dish line on an order
type OrderItem struct {
	shared.BaseEntity
	OrderID             uuid.UUID       `json:"order_id"`
	MenuItemID          uuid.UUID       `json:"menu_item_id"`
	MenuItemName        string          `json:"menu_item_name"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	SpecialInstructions string          `json:"special_instructions"`
}

// TotalPrice returns quantity times unit price
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the aggregate root for a restaurant order. GuestID ties room
// service orders to a registered guest; walk-in orders carry only a name.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber         string             `json:"order_number"`
	GuestID             *uuid.UUID         `json:"guest_id,omitempty"`
	RoomID              *uuid.UUID         `json:"room_id,omitempty"`
	GuestName           string             `json:"guest_name"`
	GuestPhone          string             `json:"guest_phone"`
	TotalAmount         decimal.Decimal    `json:"total_amount"`
	Status              OrderStatus        `json:"status"`
	PaymentStatus       OrderPaymentStatus `json:"payment_status"`
	SpecialInstructions string             `json:"special_instructions"`
	Items               []OrderItem        `json:"items,omitempty"`
}

// NewOrder creates a placed order with no items yet
func NewOrder(guestName string, createdBy uuid.UUID) (*Order, error) {
	if guestName == "" {
		return nil, shared.NewDomainError("INVALID_GUEST_NAME", "Guest name cannot be empty")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRootWithCreator(createdBy),
		OrderNumber:       GenerateOrderNumber(),
		GuestName:         guestName,
		TotalAmount:       decimal.Zero,
		Status:            OrderStatusPlaced,
		PaymentStatus:     OrderPaymentPending,
	}, nil
}

// AddItem appends a dish line and recomputes the total
func (o *Order) AddItem(menuItem *MenuItem, quantity int, instructions string) error {
	if o.Status == OrderStatusBilled || o.Status == OrderStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Billed or cancelled orders cannot be changed")
	}
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if !menuItem.IsAvailable {
		return shared.NewDomainError("ITEM_UNAVAILABLE", "Menu item is not available")
	}

	o.Items = append(o.Items, OrderItem{
		BaseEntity:          shared.NewBaseEntity(),
		OrderID:             o.ID,
		MenuItemID:          menuItem.ID,
		MenuItemName:        menuItem.Name,
		Quantity:            quantity,
		UnitPrice:           menuItem.Price,
		SpecialInstructions: instructions,
	})
	o.RecalculateTotal()
	return nil
}

// RecalculateTotal sums all item lines into TotalAmount
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice())
	}
	o.TotalAmount = total
	o.UpdatedAt = time.Now()
}

// Advance moves the order one step down the kitchen pipeline
func (o *Order) Advance() error {
	next := map[OrderStatus]OrderStatus{
		OrderStatusPlaced:    OrderStatusPreparing,
		OrderStatusPreparing: OrderStatusReady,
		OrderStatusReady:     OrderStatusServed,
		OrderStatusServed:    OrderStatusBilled,
	}
	n, ok := next[o.Status]
	if !ok {
		return shared.NewDomainError("INVALID_STATE", "Order cannot advance from its current status")
	}
	o.Status = n
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// Cancel cancels an order that has not been billed
func (o *Order) Cancel() error {
	if o.Status == OrderStatusBilled {
		return shared.NewDomainError("INVALID_STATE", "Billed orders cannot be cancelled")
	}
	o.Status = OrderStatusCancelled
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// MarkPaid records that the order's invoice settled
func (o *Order) MarkPaid() {
	o.PaymentStatus = OrderPaymentPaid
	o.UpdatedAt = time.Now()
}

// AttachGuest links the order to a registered guest
func (o *Order) AttachGuest(guestID uuid.UUID) {
	o.GuestID = &guestID
}

// AttachRoom links the order to a room for room service
func (o *Order) AttachRoom(roomID uuid.UUID) {
	o.RoomID = &roomID
}
