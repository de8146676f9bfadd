package restaurant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/restaurant"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/room"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// RestaurantService handles the menu catalog and the restaurant order
// pipeline from placement through billing.
type RestaurantService struct {
	orderRepo    restaurant.OrderRepository
	categoryRepo restaurant.MenuCategoryRepository
	menuItemRepo restaurant.MenuItemRepository
	guestRepo    guest.GuestRepository
	roomRepo     room.RoomRepository
	logger       *zap.Logger
}

// NewRestaurantService creates a new RestaurantService
func NewRestaurantService(
	orderRepo restaurant.OrderRepository,
	categoryRepo restaurant.MenuCategoryRepository,
	menuItemRepo restaurant.MenuItemRepository,
	guestRepo guest.GuestRepository,
	roomRepo room.RoomRepository,
	logger *zap.Logger,
) *RestaurantService {
	return &RestaurantService{
		orderRepo:    orderRepo,
		categoryRepo: categoryRepo,
		menuItemRepo: menuItemRepo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
		logger:       logger,
	}
}

// MenuCategoryResponse represents a menu category in API responses
type MenuCategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
}

// MenuItemResponse represents a menu item in API responses
type MenuItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	CategoryID      uuid.UUID       `json:"category_id"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	CuisineType     string          `json:"cuisine_type"`
	PreparationMins int             `json:"preparation_mins,omitempty"`
	IsVegetarian    bool            `json:"is_vegetarian"`
	IsAvailable     bool            `json:"is_available"`
}

// OrderItemResponse represents one dish line in API responses
type OrderItemResponse struct {
	ID                  uuid.UUID       `json:"id"`
	MenuItemID          uuid.UUID       `json:"menu_item_id"`
	MenuItemName        string          `json:"menu_item_name"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// OrderResponse represents a restaurant order in API responses
type OrderResponse struct {
	ID                  uuid.UUID           `json:"id"`
	OrderNumber         string              `json:"order_number"`
	GuestID             *uuid.UUID          `json:"guest_id,omitempty"`
	RoomID              *uuid.UUID          `json:"room_id,omitempty"`
	GuestName           string              `json:"guest_name"`
	GuestPhone          string              `json:"guest_phone,omitempty"`
	TotalAmount         decimal.Decimal     `json:"total_amount"`
	Status              string              `json:"status"`
	PaymentStatus       string              `json:"payment_status"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	Items               []OrderItemResponse `json:"items"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// ToMenuCategoryResponse converts a domain category to a response DTO
func ToMenuCategoryResponse(c *restaurant.MenuCategory) *MenuCategoryResponse {
	return &MenuCategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
	}
}

// ToMenuItemResponse converts a domain menu item to a response DTO
func ToMenuItemResponse(m *restaurant.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:              m.ID,
		Name:            m.Name,
		CategoryID:      m.CategoryID,
		Description:     m.Description,
		Price:           m.Price,
		CuisineType:     string(m.CuisineType),
		PreparationMins: m.PreparationMins,
		IsVegetarian:    m.IsVegetarian,
		IsAvailable:     m.IsAvailable,
	}
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(o *restaurant.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		items = append(items, OrderItemResponse{
			ID:                  it.ID,
			MenuItemID:          it.MenuItemID,
			MenuItemName:        it.MenuItemName,
			Quantity:            it.Quantity,
			UnitPrice:           it.UnitPrice,
			TotalPrice:          it.TotalPrice(),
			SpecialInstructions: it.SpecialInstructions,
		})
	}
	return &OrderResponse{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		GuestID:             o.GuestID,
		RoomID:              o.RoomID,
		GuestName:           o.GuestName,
		GuestPhone:          o.GuestPhone,
		TotalAmount:         o.TotalAmount,
		Status:              o.Status.String(),
		PaymentStatus:       string(o.PaymentStatus),
		SpecialInstructions: o.SpecialInstructions,
		Items:               items,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

// CreateMenuCategoryRequest carries the inputs for category creation
type CreateMenuCategoryRequest struct {
	Name         string
	Description  string
	DisplayOrder int
}

// CreateMenuCategory creates a new menu category
func (s *RestaurantService) CreateMenuCategory(ctx context.Context, req CreateMenuCategoryRequest) (*MenuCategoryResponse, error) {
	c, err := restaurant.NewMenuCategory(req.Name, req.DisplayOrder)
	if err != nil {
		return nil, err
	}
	c.Description = req.Description

	if err := s.categoryRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("menu category created", zap.String("name", c.Name))
	return ToMenuCategoryResponse(c), nil
}

// ListMenuCategories returns all menu categories in display order
func (s *RestaurantService) ListMenuCategories(ctx context.Context) ([]MenuCategoryResponse, error) {
	cats, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MenuCategoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, *ToMenuCategoryResponse(&cats[i]))
	}
	return out, nil
}

// CreateMenuItemRequest carries the inputs for menu item creation
type CreateMenuItemRequest struct {
	Name            string
	CategoryID      uuid.UUID
	Description     string
	Price           decimal.Decimal
	CuisineType     string
	PreparationMins int
	IsVegetarian    bool
}

// CreateMenuItem creates a new menu item under an existing category
func (s *RestaurantService) CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	c, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.ErrNotFound
	}

	m, err := restaurant.NewMenuItem(req.Name, c.ID, req.Price, restaurant.CuisineType(req.CuisineType))
	if err != nil {
		return nil, err
	}
	m.Description = req.Description
	m.PreparationMins = req.PreparationMins
	m.IsVegetarian = req.IsVegetarian

	if err := s.menuItemRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info("menu item created", zap.String("name", m.Name))
	return ToMenuItemResponse(m), nil
}

// ListMenuItems returns the items of a category, or the whole available menu
// when no category is given
func (s *RestaurantService) ListMenuItems(ctx context.Context, categoryID *uuid.UUID) ([]MenuItemResponse, error) {
	var (
		items []restaurant.MenuItem
		err   error
	)
	if categoryID != nil {
		items, err = s.menuItemRepo.FindByCategory(ctx, *categoryID)
	} else {
		items, err = s.menuItemRepo.FindAvailable(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *ToMenuItemResponse(&items[i]))
	}
	return out, nil
}

// SetMenuItemAvailability toggles whether an item can be ordered
func (s *RestaurantService) SetMenuItemAvailability(ctx context.Context, id uuid.UUID, available bool) (*MenuItemResponse, error) {
	m, err := s.menuItemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, shared.ErrNotFound
	}

	if available {
		m.IsAvailable = true
		m.UpdatedAt = time.Now()
	} else {
		m.MarkUnavailable()
	}
	if err := s.menuItemRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return ToMenuItemResponse(m), nil
}

// OrderItemRequest is one requested dish line
type OrderItemRequest struct {
	MenuItemID          uuid.UUID
	Quantity            int
	SpecialInstructions string
}

// CreateOrderRequest carries the inputs for order creation
type CreateOrderRequest struct {
	GuestName           string
	GuestPhone          string
	GuestID             *uuid.UUID
	RoomID              *uuid.UUID
	SpecialInstructions string
	Items               []OrderItemRequest
	ActorID             uuid.UUID
}

// CreateOrder places a new order. When a guest or room ID is supplied the
// reference is verified before it is attached.
func (s *RestaurantService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}

	o, err := restaurant.NewOrder(req.GuestName, req.ActorID)
	if err != nil {
		return nil, err
	}
	o.GuestPhone = req.GuestPhone
	o.SpecialInstructions = req.SpecialInstructions

	if req.GuestID != nil {
		g, err := s.guestRepo.FindByID(ctx, *req.GuestID)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return nil, shared.ErrNotFound
		}
		o.AttachGuest(g.ID)
	}
	if req.RoomID != nil {
		r, err := s.roomRepo.FindByID(ctx, *req.RoomID)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, shared.ErrNotFound
		}
		o.AttachRoom(r.ID)
	}

	for _, line := range req.Items {
		m, err := s.menuItemRepo.FindByID(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, shared.ErrNotFound
		}
		if err := o.AddItem(m, line.Quantity, line.SpecialInstructions); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_number", o.OrderNumber),
		zap.Int("items", len(o.Items)),
		zap.String("total", o.TotalAmount.String()),
	)
	return ToOrderResponse(o), nil
}

// GetOrder returns an order with its items
func (s *RestaurantService) GetOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, shared.ErrNotFound
	}
	return ToOrderResponse(o), nil
}

// ListOrdersFilter defines filtering options for order listing
type ListOrdersFilter struct {
	GuestID       *uuid.UUID
	RoomID        *uuid.UUID
	Status        string
	PaymentStatus string
	FromDate      *time.Time
	ToDate        *time.Time
	Search        string
	Page          int
	PageSize      int
}

// ListOrders returns a page of orders, newest first
func (s *RestaurantService) ListOrders(ctx context.Context, filter ListOrdersFilter) (*shared.Paginated[OrderResponse], error) {
	f := restaurant.OrderFilter{Filter: shared.DefaultFilter()}
	f.Search = filter.Search
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.GuestID = filter.GuestID
	f.RoomID = filter.RoomID
	f.FromDate = filter.FromDate
	f.ToDate = filter.ToDate
	if filter.Status != "" {
		st := restaurant.OrderStatus(filter.Status)
		f.Status = &st
	}
	if filter.PaymentStatus != "" {
		ps := restaurant.OrderPaymentStatus(filter.PaymentStatus)
		f.PaymentStatus = &ps
	}

	orders, err := s.orderRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, *ToOrderResponse(&orders[i]))
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// AddOrderItem appends a dish line to an open order
func (s *RestaurantService) AddOrderItem(ctx context.Context, orderID uuid.UUID, req OrderItemRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, shared.ErrNotFound
	}

	m, err := s.menuItemRepo.FindByID(ctx, req.MenuItemID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, shared.ErrNotFound
	}

	if err := o.AddItem(m, req.Quantity, req.SpecialInstructions); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// AdvanceOrder moves an order one step down the kitchen pipeline
func (s *RestaurantService) AdvanceOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, shared.ErrNotFound
	}

	if err := o.Advance(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order advanced",
		zap.String("order_number", o.OrderNumber),
		zap.String("status", o.Status.String()),
	)
	return ToOrderResponse(o), nil
}

// CancelOrder cancels an order that has not been billed
func (s *RestaurantService) CancelOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, shared.ErrNotFound
	}

	if err := o.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order cancelled", zap.String("order_number", o.OrderNumber))
	return ToOrderResponse(o), nil
}

// DeleteOrder removes an order. Paid orders cannot be deleted.
func (s *RestaurantService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return shared.ErrNotFound
	}
	if o.PaymentStatus == restaurant.OrderPaymentPaid {
		return shared.NewDomainError("INVALID_STATE", "Paid orders cannot be deleted")
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.String("order_number", o.OrderNumber))
	return nil
}
